package lib

import "testing"
import "reflect"

func TestParsecsv(t *testing.T) {
	testcases := [][2]interface{}{
		{"", []string(nil)},
		{"100", []string{"100"}},
		{"100, 200,,500 ", []string{"100", "200", "500"}},
		{" , ,", []string{}},
	}
	for _, tcase := range testcases {
		input, ref := tcase[0].(string), tcase[1].([]string)
		if outs := Parsecsv(input); !reflect.DeepEqual(ref, outs) {
			t.Errorf("for %q expected %v, got %v", input, ref, outs)
		}
	}
}

func TestPrettystats(t *testing.T) {
	stats := map[string]interface{}{"n_count": 10, "n_nodes": 4}
	ref := `{"n_count":10,"n_nodes":4}`
	if out := Prettystats(stats, false); out != ref {
		t.Errorf("expected %v, got %v", ref, out)
	}
	ref = "{\n  \"n_count\": 10,\n  \"n_nodes\": 4\n}"
	if out := Prettystats(stats, true); out != ref {
		t.Errorf("expected %v, got %v", ref, out)
	}
}

func TestSortedkeys(t *testing.T) {
	stats := map[string]interface{}{"b": 1, "c": 2, "a": 3}
	ref := []string{"a", "b", "c"}
	if keys := Sortedkeys(stats); !reflect.DeepEqual(ref, keys) {
		t.Errorf("expected %v, got %v", ref, keys)
	}
}
