package lib

import "fmt"
import "strings"
import "strconv"

// Settings map of settings parameters. Keys are dotted names, like
// "hash.buckets", and components pick their own section by prefix.
type Settings map[string]interface{}

// Section will create a new settings object with parameters
// starting with `prefix`.
func (setts Settings) Section(prefix string) Settings {
	section := make(Settings)
	for key, value := range setts {
		if strings.HasPrefix(key, prefix) {
			section[key] = value
		}
	}
	return section
}

// Trim settings parameter with `prefix` string.
func (setts Settings) Trim(prefix string) Settings {
	trimmed := make(Settings)
	for key, value := range setts {
		trimmed[strings.TrimPrefix(key, prefix)] = value
	}
	return trimmed
}

// AddPrefix is the reverse of Trim, every key in the returned
// settings is prefixed with `prefix`.
func (setts Settings) AddPrefix(prefix string) Settings {
	prefixed := make(Settings)
	for key, value := range setts {
		prefixed[prefix+key] = value
	}
	return prefixed
}

// Mixin settings to override `setts` with `settings`. Later arguments
// take precedence over earlier ones.
func (setts Settings) Mixin(settings ...interface{}) Settings {
	update := func(arg map[string]interface{}) {
		for key, value := range arg {
			setts[key] = value
		}
	}
	for _, arg := range settings {
		switch cnf := arg.(type) {
		case Settings:
			update(map[string]interface{}(cnf))
		case map[string]interface{}:
			update(cnf)
		case nil:
		default:
			panicerr("cannot mixin settings of type %T", arg)
		}
	}
	return setts
}

// Bool return the boolean value for key.
func (setts Settings) Bool(key string) bool {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	switch val := value.(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			panicerr("settings %q not a bool: %q", key, val)
		}
		return b
	}
	panicerr("settings %q not a bool: %T", key, value)
	return false
}

// Int64 return the int64 value for key.
func (setts Settings) Int64(key string) int64 {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	switch val := value.(type) {
	case int64:
		return val
	case int:
		return int64(val)
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			panicerr("settings %v not a number: %q", key, val)
		}
		return n
	}
	if val, ok := tofloat64(value); ok {
		return int64(val)
	}
	panicerr("settings %v not a number: %T", key, value)
	return 0
}

// String return the string value for key.
func (setts Settings) String(key string) string {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	val, ok := value.(string)
	if !ok {
		panicerr("settings %v not a string: %T", key, value)
	}
	return val
}

// Int64s return a list of numbers for key, accepts []int64, []int or a
// comma separated string.
func (setts Settings) Int64s(key string) []int64 {
	value, ok := setts[key]
	if !ok {
		panicerr("missing settings %q", key)
	}
	switch val := value.(type) {
	case []int64:
		return val
	case []int:
		ns := make([]int64, 0, len(val))
		for _, n := range val {
			ns = append(ns, int64(n))
		}
		return ns
	case string:
		ns := make([]int64, 0)
		for _, s := range Parsecsv(val) {
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				panicerr("settings %v, %q not a number", key, s)
			}
			ns = append(ns, n)
		}
		return ns
	}
	panicerr("settings %v not a list of numbers: %T", key, value)
	return nil
}

func tofloat64(value interface{}) (float64, bool) {
	switch val := value.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint64:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint8:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case int16:
		return float64(val), true
	case int8:
		return float64(val), true
	}
	return 0, false
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
