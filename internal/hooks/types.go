package hooks

import "time"

// File is the content of .rei.hooks.yml.
type File struct {
	Version int   `yaml:"version"`
	Hooks   Hooks `yaml:"hooks"`
}

// Hooks lists the commands bound to each event.
type Hooks struct {
	PostCommit *Hook `yaml:"post_commit"`
}

// Hook is a shell command run through sh -c.
type Hook struct {
	Command string            `yaml:"command"`
	Timeout int               `yaml:"timeout"` // seconds, DefaultTimeout when unset
	Env     map[string]string `yaml:"env"`
}

// DefaultTimeout applies to hooks without a timeout.
const DefaultTimeout = 30 * time.Second

func (h *Hook) timeout() time.Duration {
	if h.Timeout <= 0 {
		return DefaultTimeout
	}
	return time.Duration(h.Timeout) * time.Second
}

// Variables holds the values exposed to a hook command.
type Variables struct {
	Title string // commit title
	ID    string // submission id
}
