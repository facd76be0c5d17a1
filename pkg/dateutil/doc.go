// Package dateutil contains calendar helpers around time.Time.
//
// Results keep the location of their input, except FromUnix which returns UTC.
// Week starts default to Monday:
//
//	dateutil.StartOfWeek(t)               // Monday 00:00
//	dateutil.StartOfWeek(t, time.Sunday)  // Sunday 00:00
//	dateutil.EndOfMonth(t)                // last day, 23:59:59.999
package dateutil
