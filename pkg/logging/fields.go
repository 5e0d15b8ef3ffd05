package logging

// Detail is a logging detail that enrich the logging message with additional contextual detail.
type Detail interface {
	addTo(e entry)
}

// Field creates a single key value pair based logging detail.
// It will enrich the log entry with a value in the key you gave.
func Field(key string, value any) Detail {
	return field{Key: key, Value: value}
}

type field struct {
	Key   string
	Value any
}

func (f field) addTo(e entry) {
	e[f.Key] = toFieldValue(f.Value)
}

// Fields is a collection of field that you can add to your logging record.
type Fields map[string]any

func (fields Fields) addTo(e entry) {
	for k, v := range fields {
		Field(k, v).addTo(e)
	}
}

// ErrField turns an error value into a logging detail under the "error" key.
func ErrField(err error) Detail {
	if err == nil {
		return nullLoggingDetail{}
	}
	return Field("error", Fields{"message": err.Error()})
}

func toFieldValue(val any) any {
	switch val := val.(type) {
	case Fields:
		le := entry{}
		val.addTo(le)
		return map[string]any(le)
	case Detail:
		le := entry{}
		val.addTo(le)
		return map[string]any(le)
	default:
		return val
	}
}

type entry map[string]any

type nullLoggingDetail struct{}

func (nullLoggingDetail) addTo(entry) {}
