package wizard

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LegacyModeKey is the context key for the sticky compatibility flag.
// Once any chosen entry forces legacy mode, the flag stays set for the
// rest of the run regardless of later choices.
const LegacyModeKey = "legacy_mode"

// NoSuchOptionError is returned by typed accessors when the requested
// key has never been set on the context.
type NoSuchOptionError struct {
	Key string
}

func (e *NoSuchOptionError) Error() string {
	return fmt.Sprintf("no such option: %s", e.Key)
}

// Context accumulates every decision made during a wizard pass.
//
// It is a flat, insertion-ordered key/value store. Keys are never removed
// once set. The finished context is handed read-only to the template
// renderer; only the driver and menu hooks may mutate it before that.
type Context struct {
	keys   []string
	values map[string]any
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{
		values: make(map[string]any),
	}
}

// Set records a value under key. Setting an existing key overwrites the
// value but keeps its original position. The legacy-mode key is sticky:
// once true it cannot be lowered back to false.
func (c *Context) Set(key string, value any) {
	if key == LegacyModeKey {
		if on, _ := c.values[key].(bool); on {
			return
		}
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the raw value for key. Absence is not an error on this path.
func (c *Context) Get(key string) (any, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key has been set.
func (c *Context) Has(key string) bool {
	_, ok := c.values[key]
	return ok
}

// String returns the value for key as a string.
func (c *Context) String(key string) (string, error) {
	v, ok := c.values[key]
	if !ok {
		return "", &NoSuchOptionError{Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("option %s is %T, not a string", key, v)
	}
	return s, nil
}

// Bool returns the value for key as a bool.
func (c *Context) Bool(key string) (bool, error) {
	v, ok := c.values[key]
	if !ok {
		return false, &NoSuchOptionError{Key: key}
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("option %s is %T, not a bool", key, v)
	}
	return b, nil
}

// Truthy reports whether key is set to a non-zero value. Absent keys,
// false booleans and empty strings all count as false.
func (c *Context) Truthy(key string) bool {
	switch v := c.values[key].(type) {
	case bool:
		return v
	case string:
		return v != ""
	case nil:
		return false
	default:
		return true
	}
}

// Keys returns all set keys in insertion order.
func (c *Context) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Snapshot returns a shallow copy of the backing map for read-only
// consumers such as visibility predicates.
func (c *Context) Snapshot() map[string]any {
	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}
	return out
}

// LegacyMode reports whether the sticky compatibility flag has been set.
func (c *Context) LegacyMode() bool {
	on, _ := c.values[LegacyModeKey].(bool)
	return on
}

// ForceLegacyMode sets the sticky compatibility flag.
func (c *Context) ForceLegacyMode() {
	c.Set(LegacyModeKey, true)
}

// MarshalYAML renders the context as a mapping in insertion order, so the
// generated manifest is stable across runs with the same answers.
func (c *Context) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range c.keys {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(key); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(c.values[key]); err != nil {
			return nil, fmt.Errorf("failed to encode option %s: %w", key, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
