package util

import (
	"sync"
	"time"
)

// CN A-share sessions (SSE/SZSE, Asia/Shanghai local time):
// morning 9:30-11:30, afternoon 13:00-15:00, Monday-Friday.
// Exchange holidays are not modelled; callers polling outside holidays
// simply see an empty market.

var (
	shanghaiOnce sync.Once
	shanghaiLoc  *time.Location
)

func shanghai() *time.Location {
	shanghaiOnce.Do(func() {
		loc, err := time.LoadLocation("Asia/Shanghai")
		if err != nil {
			loc = time.FixedZone("CST", 8*60*60)
		}
		shanghaiLoc = loc
	})
	return shanghaiLoc
}

type session struct {
	openH, openM   int
	closeH, closeM int
}

var cnSessions = [...]session{
	{9, 30, 11, 30},
	{13, 0, 15, 0},
}

// IsMarketOpen reports whether the CN A-share market is in a trading
// session at time t.
func IsMarketOpen(t time.Time) bool {
	t = t.In(shanghai())
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	mins := t.Hour()*60 + t.Minute()
	for _, s := range cnSessions {
		if mins >= s.openH*60+s.openM && mins < s.closeH*60+s.closeM {
			return true
		}
	}
	return false
}

// NextOpen returns the next session open at or after t. If t is inside a
// session, t itself is returned.
func NextOpen(t time.Time) time.Time {
	t = t.In(shanghai())
	if IsMarketOpen(t) {
		return t
	}
	for day := 0; day <= 7; day++ {
		d := t.AddDate(0, 0, day)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		for _, s := range cnSessions {
			open := time.Date(d.Year(), d.Month(), d.Day(), s.openH, s.openM, 0, 0, shanghai())
			if !open.Before(t) {
				return open
			}
		}
	}
	// Unreachable: a weekday session always exists within 7 days.
	return t
}
