package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"codeberg.org/snonux/kirtis/internal/accent"
)

var (
	// ErrMalformedResponse is returned when analyzer output does not have the expected shape.
	ErrMalformedResponse = errors.New("malformed analyzer response")

	// ErrWordNotFound is returned by providers that have no data for a word.
	ErrWordNotFound = errors.New("word not known to analyzer")
)

// DecodeOptions parses the analyzer's decoded_options list: a JSON array of
// objects carrying grammatical_case, stress_type and stressed_letter_index.
// Every field is required. Values are not range checked here; rendering
// reports out-of-range data.
func DecodeOptions(data []byte) ([]accent.StressOption, error) {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	options := make([]accent.StressOption, 0, len(raw))
	for i, item := range raw {
		opt, err := decodeOption(item)
		if err != nil {
			return nil, fmt.Errorf("%w: option %d: %v", ErrMalformedResponse, i, err)
		}
		options = append(options, opt)
	}
	return options, nil
}

func decodeOption(item map[string]json.RawMessage) (accent.StressOption, error) {
	var opt accent.StressOption

	if err := field(item, "grammatical_case", &opt.GrammaticalCase); err != nil {
		return opt, err
	}

	var stressType int
	if err := field(item, "stress_type", &stressType); err != nil {
		return opt, err
	}
	if stressType < 0 || stressType > math.MaxUint8 {
		return opt, fmt.Errorf("stress_type %d does not fit a stress class", stressType)
	}
	opt.StressType = accent.StressType(stressType)

	if err := field(item, "stressed_letter_index", &opt.StressedLetterIndex); err != nil {
		return opt, err
	}
	return opt, nil
}

func field(item map[string]json.RawMessage, key string, v any) error {
	raw, ok := item[key]
	if !ok || string(raw) == "null" {
		return fmt.Errorf("missing %s", key)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%s: %v", key, err)
	}
	return nil
}

// decodeEnvelope parses {"decoded_options": [...]}, the shape chat models
// are asked to answer with.
func decodeEnvelope(data []byte) ([]accent.StressOption, error) {
	var env struct {
		DecodedOptions json.RawMessage `json:"decoded_options"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(env.DecodedOptions) == 0 {
		return nil, fmt.Errorf("%w: missing decoded_options", ErrMalformedResponse)
	}
	return DecodeOptions(env.DecodedOptions)
}
