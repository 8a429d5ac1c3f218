package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("America/Denver")
	if err != nil {
		panic(err)
	}
}

// filings are published on Utah time; pin the zone so date arithmetic on
// <time.Time>.Year()/Month()/Day() stays stable no matter where the
// importer runs
func Now() time.Time {
	return time.Now().In(Location)
}
