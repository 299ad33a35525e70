package metrics

// MultiSink fans dispatch records out to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordDispatch forwards the records to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordDispatch(records []DispatchRecord) error {
	for _, s := range m.Sinks {
		if err := s.RecordDispatch(records); err != nil {
			return err
		}
	}
	return nil
}
