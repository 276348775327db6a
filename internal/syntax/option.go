package syntax

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"bennypowers.dev/abbrls/internal/collections"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Option enables a feature either everywhere or for a set of syntax tags.
// A tag is a syntax name ("scss") or a type ("stylesheet"), optionally
// suffixed with "-inline" to match only inline style positions.
//
// In configuration an Option is written as true, false or a list of tags.
type Option struct {
	All  bool
	Tags collections.Set[string]
}

// Always returns an option enabled for every syntax
func Always() Option {
	return Option{All: true}
}

// Only returns an option enabled for the given tags
func Only(tags ...string) Option {
	return Option{Tags: collections.NewSet(tags...)}
}

// Enabled reports whether the option is on for at least one syntax
func (o Option) Enabled() bool {
	return o.All || len(o.Tags) > 0
}

const inlineSuffix = "-inline"

// EnabledForSyntax reports whether option is on at the position described by info
func EnabledForSyntax(option Option, info Info) bool {
	if option.All {
		return true
	}

	candidates := []string{string(info.Type), string(info.Syntax)}
	if info.Inline {
		candidates = append(candidates,
			string(info.Type)+inlineSuffix,
			string(info.Syntax)+inlineSuffix,
		)
	}
	for _, tag := range candidates {
		if tag != "" && tag != inlineSuffix && option.Tags.Has(tag) {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the option as true, false or a sorted tag list
func (o Option) MarshalJSON() ([]byte, error) {
	if o.All || len(o.Tags) == 0 {
		return json.Marshal(o.All)
	}
	return json.Marshal(collections.Sorted(o.Tags))
}

// UnmarshalJSON decodes true, false or a list of tags
func (o *Option) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	opt, err := optionFrom(raw)
	if err != nil {
		return err
	}
	*o = opt
	return nil
}

// UnmarshalYAML decodes true, false or a list of tags
func (o *Option) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return err
	}
	opt, err := optionFrom(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*o = opt
	return nil
}

var optionType = reflect.TypeOf(Option{})

// OptionDecodeHook lets mapstructure decode Option fields from the loosely
// typed settings clients send
func OptionDecodeHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if to != optionType {
			return data, nil
		}
		return optionFrom(data)
	}
}

func optionFrom(raw any) (Option, error) {
	switch v := raw.(type) {
	case nil:
		return Option{}, nil
	case bool:
		return Option{All: v}, nil
	case string:
		// a single tag, or a comma separated list
		var tags []string
		for tag := range strings.SplitSeq(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		return Only(tags...), nil
	case []string:
		return Only(v...), nil
	case []any:
		tags := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return Option{}, fmt.Errorf("syntax option entries must be strings, got %T", item)
			}
			tags = append(tags, s)
		}
		return Only(tags...), nil
	case Option:
		return v, nil
	}
	return Option{}, fmt.Errorf("syntax option must be a boolean or a list of syntaxes, got %T", raw)
}
