package bench

import "sync/atomic"

import "github.com/emokater/data-search-algorithms/log"
import "github.com/emokater/data-search-algorithms/rbt"

var logok = int64(0)

// LogComponents enable logging for bench, with "bench", "self" or
// "all". "rbt" and "all" enable logging for the red-black tree.
func LogComponents(components ...string) {
	for _, comp := range components {
		switch comp {
		case "bench", "self":
			atomic.StoreInt64(&logok, 1)
		case "rbt":
			rbt.LogComponents("rbt")
		case "all":
			atomic.StoreInt64(&logok, 1)
			rbt.LogComponents("all")
		}
	}
}

func debugf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Debugf(format, v...)
	}
}

func infof(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Infof(format, v...)
	}
}

func warnf(format string, v ...interface{}) {
	if atomic.LoadInt64(&logok) > 0 {
		log.Warnf(format, v...)
	}
}
