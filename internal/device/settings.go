package device

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	// DefaultEventBufferLength is the per event type ring capacity used when
	// the document does not set event_buffer_length.
	DefaultEventBufferLength = 1024

	maxNameLength = 1024
)

// Settings is the fully resolved configuration of one monitored device.
// It is constructed once by Load at device initialization and treated as
// immutable for the life of the device session.
type Settings struct {
	Name              string   `mapstructure:"name" json:"name"`
	Filename          *string  `mapstructure:"filename" json:"filename,omitempty"`
	MonitorEventTypes []string `mapstructure:"monitor_event_types" json:"monitor_event_types"`
	Enable            bool     `mapstructure:"enable" json:"enable"`
	SaveEvents        bool     `mapstructure:"save_events" json:"save_events"`
	StreamEvents      bool     `mapstructure:"stream_events" json:"stream_events"`
	AutoReportEvents  bool     `mapstructure:"auto_report_events" json:"auto_report_events"`
	EventBufferLength int      `mapstructure:"event_buffer_length" json:"event_buffer_length"`
	DeviceNumber      int      `mapstructure:"device_number" json:"device_number"`
	ManufacturerName  string   `mapstructure:"manufacturer_name" json:"manufacturer_name"`
	ModelName         string   `mapstructure:"model_name" json:"model_name"`
}

// Defaults returns the documented default settings. Filename stays nil:
// "never set" is distinct from an explicitly empty filename.
func Defaults() Settings {
	return Settings{
		Name:              "device",
		MonitorEventTypes: []string{},
		Enable:            true,
		SaveEvents:        true,
		StreamEvents:      true,
		AutoReportEvents:  false,
		EventBufferLength: DefaultEventBufferLength,
		DeviceNumber:      0,
	}
}

// Load overlays the partial document onto Defaults and validates the result.
// Every offending key is reported; on any error the returned Settings is nil
// and nothing from the document has been applied anywhere. Scalar kinds are
// strict: a YAML string "True" for a bool key is an error, not a coercion.
func Load(doc map[string]any) (*Settings, error) {
	s := Defaults()
	errs := validation.Errors{}

	for key, raw := range doc {
		var err error
		switch key {
		case "name":
			s.Name, err = stringValue(raw)
		case "filename":
			s.Filename, err = optionalStringValue(raw)
		case "monitor_event_types":
			s.MonitorEventTypes, err = stringListValue(raw)
		case "enable":
			s.Enable, err = boolValue(raw)
		case "save_events":
			s.SaveEvents, err = boolValue(raw)
		case "stream_events":
			s.StreamEvents, err = boolValue(raw)
		case "auto_report_events":
			s.AutoReportEvents, err = boolValue(raw)
		case "event_buffer_length":
			s.EventBufferLength, err = intValue(raw)
		case "device_number":
			s.DeviceNumber, err = intValue(raw)
		case "manufacturer_name":
			s.ManufacturerName, err = stringValue(raw)
		case "model_name":
			s.ModelName, err = stringValue(raw)
		default:
			err = validation.NewError(
				"validation_unknown_key",
				"is not a supported device setting")
		}
		if err != nil {
			errs[key] = err
		}
	}

	if rangeErr := s.Validate(); rangeErr != nil {
		if rangeErrs, ok := rangeErr.(validation.Errors); ok {
			for key, err := range rangeErrs {
				if _, reported := errs[key]; !reported {
					errs[key] = err
				}
			}
		} else {
			return nil, rangeErr
		}
	}

	if err := errs.Filter(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the range invariants of an already typed Settings value.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name,
			validation.Required.Error("cannot be empty"),
			validation.Length(1, maxNameLength),
			validation.By(validateIdentifier),
		),
		validation.Field(&s.EventBufferLength,
			validation.By(validateBufferLength),
		),
		validation.Field(&s.DeviceNumber,
			validation.By(validateDeviceNumber),
		),
	)
}

// Map returns the key/value form of the settings. Reloading the result
// yields an identical record. The filename key is omitted while unset so
// the round trip preserves the "not yet set" state.
func (s *Settings) Map() map[string]any {
	m := map[string]any{
		"name":                s.Name,
		"monitor_event_types": append([]string{}, s.MonitorEventTypes...),
		"enable":              s.Enable,
		"save_events":         s.SaveEvents,
		"stream_events":       s.StreamEvents,
		"auto_report_events":  s.AutoReportEvents,
		"event_buffer_length": s.EventBufferLength,
		"device_number":       s.DeviceNumber,
		"manufacturer_name":   s.ManufacturerName,
		"model_name":          s.ModelName,
	}
	if s.Filename != nil {
		m["filename"] = *s.Filename
	}
	return m
}

// Ozzo threshold rules treat zero as empty and skip it, so the range
// invariants on the int fields are checked explicitly.
func validateBufferLength(value interface{}) error {
	length, ok := value.(int)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an int")
	}
	if length < 1 {
		return validation.NewError(
			"validation_int_range",
			"must be at least 1")
	}
	return nil
}

func validateDeviceNumber(value interface{}) error {
	number, ok := value.(int)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be an int")
	}
	if number < 0 {
		return validation.NewError(
			"validation_int_range",
			"cannot be negative")
	}
	return nil
}

func validateIdentifier(value interface{}) error {
	name, ok := value.(string)
	if !ok {
		return validation.NewError("validation_invalid_type", "must be a string")
	}
	if len(name) > 0 && !isAlpha(rune(name[0])) {
		return validation.NewError(
			"validation_invalid_identifier",
			"must start with a letter")
	}
	return nil
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func boolValue(raw any) (bool, error) {
	b, ok := raw.(bool)
	if !ok {
		return false, validation.NewError(
			"validation_bool_required",
			fmt.Sprintf("a bool value is required, got %T", raw))
	}
	return b, nil
}

func intValue(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	default:
		return 0, validation.NewError(
			"validation_int_required",
			fmt.Sprintf("an int value is required, got %T", raw))
	}
}

func stringValue(raw any) (string, error) {
	str, ok := raw.(string)
	if !ok {
		return "", validation.NewError(
			"validation_string_required",
			fmt.Sprintf("a string value is required, got %T", raw))
	}
	return str, nil
}

// optionalStringValue keeps the document's null distinct from empty: an
// explicit null leaves the field unset, a string (even "") sets it.
func optionalStringValue(raw any) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	str, err := stringValue(raw)
	if err != nil {
		return nil, err
	}
	return &str, nil
}

func stringListValue(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, validation.NewError(
					"validation_string_list_required",
					fmt.Sprintf("a list of strings is required, got element of type %T", item))
			}
			out = append(out, str)
		}
		return out, nil
	case nil:
		return []string{}, nil
	default:
		return nil, validation.NewError(
			"validation_string_list_required",
			fmt.Sprintf("a list of strings is required, got %T", raw))
	}
}
