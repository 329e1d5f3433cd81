// Package ictrp implements the primary registry connector for the WHO
// International Clinical Trials Registry Platform search API.
//
// The API answers with XML rooted at <trials>, one <trial> element per
// record. Field shapes are not uniform across source registries: list
// fields sometimes wrap their values (<countries><country>A</country>)
// and sometimes carry the value directly (<countries>A</countries>). The
// connector records which shape was seen and leaves the choice to the
// normaliser.
//
// # Query Parameters
//
//   - search: free-text query (a city name during city searches)
//   - condition, country, sponsor, phase
//   - recruitment: recruitment status
//   - dateFrom, dateTo: registration window
//   - max: result cap
//   - trialid: exact trial identifier
//
// Empty parameters are never sent.
package ictrp
