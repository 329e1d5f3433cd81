// Package ctgov implements the secondary registry connector for the
// ClinicalTrials.gov full-study search API.
//
// Requests are expressed as a single search expression (expr) built from
// the registry parameters. City searches use the AREA[City] operator, which
// ICTRP lacks, so this connector is tried first when a query and a country
// are both given.
//
// Responses are JSON. The connector walks
// FullStudiesResponse.FullStudies[].Study.ProtocolSection with gjson and
// produces the same raw structure the ICTRP connector does: conditions and
// countries are wrapped lists, the phase list is joined into one direct
// value. Defaults for missing fields are left to the normaliser.
package ctgov
