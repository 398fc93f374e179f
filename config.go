// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package webwin

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Default creation parameters applied to zero WindowConfig fields.
const (
	DefaultTitle  = "webwin"
	DefaultWidth  = 420.0
	DefaultHeight = 600.0
)

// Size is a logical width and height pair. The zero Size means unset.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// IsZero reports whether both components are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// fits reports whether s is no larger than o in either dimension.
func (s Size) fits(o Size) bool {
	return s.Width <= o.Width && s.Height <= o.Height
}

func (s Size) valid() bool {
	for _, v := range [2]float64{s.Width, s.Height} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// JoinPolicy selects whether process exit waits for a window.
type JoinPolicy uint8

const (
	// JoinWait makes Main and Wait block until the window has terminated.
	JoinWait JoinPolicy = iota
	// JoinDetached lets the process exit while the window is still open.
	// Best effort: only platforms reporting CapDetach accept it, and some
	// toolkits still cannot hand control back once their loop is entered.
	JoinDetached
)

func (p JoinPolicy) String() string {
	switch p {
	case JoinWait:
		return "wait"
	case JoinDetached:
		return "detached"
	}
	return fmt.Sprintf("JoinPolicy(%d)", uint8(p))
}

// ParseJoinPolicy parses "wait" or "detached". The empty string is JoinWait.
func ParseJoinPolicy(s string) (JoinPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wait":
		return JoinWait, nil
	case "detached":
		return JoinDetached, nil
	}
	return JoinWait, fmt.Errorf("%w: unknown join policy %q", ErrInvalidConfig, s)
}

// WindowConfig holds immutable window creation parameters.
type WindowConfig struct {
	Title       string     `yaml:"title"`
	HTML        string     `yaml:"html"`
	Size        Size       `yaml:"size"`
	MinSize     Size       `yaml:"min_size"`
	MaxSize     Size       `yaml:"max_size"`
	Resizable   *bool      `yaml:"resizable"`
	Frameless   bool       `yaml:"frameless"`
	Transparent bool       `yaml:"transparent"`
	Debug       bool       `yaml:"debug"`
	JoinPolicy  JoinPolicy `yaml:"-"`
}

// IsResizable reports the effective resizable flag. Defaults to true.
func (c WindowConfig) IsResizable() bool {
	return c.Resizable == nil || *c.Resizable
}

// WithDefaults returns c with unset title and size filled in.
func (c WindowConfig) WithDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Size.IsZero() {
		c.Size = Size{Width: DefaultWidth, Height: DefaultHeight}
	}
	return c
}

// Validate checks the invariants of c. Sizes are never clamped:
// MinSize must fit in Size, and Size must fit in MaxSize, when set.
func (c WindowConfig) Validate() error {
	if err := validText("title", c.Title); err != nil {
		return err
	}
	if err := validText("html", c.HTML); err != nil {
		return err
	}
	sizes := [...]struct {
		name string
		s    Size
	}{{"size", c.Size}, {"min_size", c.MinSize}, {"max_size", c.MaxSize}}
	for _, f := range sizes {
		if !f.s.valid() {
			return fmt.Errorf("%w: %s must be finite and non-negative, got %vx%v", ErrInvalidConfig, f.name, f.s.Width, f.s.Height)
		}
	}
	if !c.MinSize.IsZero() && !c.MinSize.fits(c.Size) {
		return fmt.Errorf("%w: min_size %vx%v exceeds size %vx%v", ErrInvalidConfig,
			c.MinSize.Width, c.MinSize.Height, c.Size.Width, c.Size.Height)
	}
	if !c.MaxSize.IsZero() && !c.Size.fits(c.MaxSize) {
		return fmt.Errorf("%w: size %vx%v exceeds max_size %vx%v", ErrInvalidConfig,
			c.Size.Width, c.Size.Height, c.MaxSize.Width, c.MaxSize.Height)
	}
	switch c.JoinPolicy {
	case JoinWait, JoinDetached:
	default:
		return fmt.Errorf("%w: unknown join policy %v", ErrInvalidConfig, c.JoinPolicy)
	}
	return nil
}

// validText rejects payloads the native side cannot carry as C strings.
func validText(field, s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidConfig, field)
	}
	if i := strings.IndexByte(s, 0); i >= 0 {
		return fmt.Errorf("%w: %s contains NUL byte at %d", ErrInvalidConfig, field, i)
	}
	return nil
}
