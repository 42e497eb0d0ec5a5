package report

import "errors"

// Summary is an ordered set of statistics computed over one sample or pair.
type Summary struct {
	Title  string  `json:"title"      yaml:"title"`
	Count  int     `json:"count"      yaml:"count"`
	Values []Value `json:"statistics" yaml:"statistics"`
}

// Lookup returns the statistic called name.
func (s Summary) Lookup(name string) (Value, bool) {
	for _, v := range s.Values {
		if v.Name == name {
			return v, true
		}
	}

	return Value{}, false
}

// Failed returns the statistics that could not be computed.
func (s Summary) Failed() []Value {
	var failed []Value

	for _, v := range s.Values {
		if !v.OK() {
			failed = append(failed, v)
		}
	}

	return failed
}

// Err joins every failure in the summary; nil when all statistics succeeded.
func (s Summary) Err() error {
	var errs []error

	for _, v := range s.Failed() {
		errs = append(errs, v.Err())
	}

	return errors.Join(errs...)
}

func (s *Summary) add(values ...Value) {
	s.Values = append(s.Values, values...)
}
