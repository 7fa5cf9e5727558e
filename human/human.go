package human

import (
	"strings"

	"github.com/signadot/dx-format/go-dx/debug"
	"github.com/signadot/dx-format/go-dx/encode"
	"github.com/signadot/dx-format/go-dx/parse"
)

const maxDepth = parse.DefaultMaxRecursionDepth

// ToHuman parses dense text and renders it in human form.
func ToHuman(dense string, cfg Config) (string, error) {
	if strings.TrimSpace(dense) == "" {
		return "", nil
	}
	doc, err := parse.ParseString(dense, parse.ParseComments(cfg.comments))
	if err != nil {
		return "", err
	}
	if debug.Human() {
		debug.Logf("to human: %v\n", doc)
	}
	return Render(doc, cfg)
}

// ToDense reads human text and encodes it densely.
func ToDense(human string, cfg Config) (string, error) {
	if strings.TrimSpace(human) == "" {
		return "", nil
	}
	doc, err := Read(human, cfg)
	if err != nil {
		return "", err
	}
	if debug.Human() {
		debug.Logf("to dense: %v\n", doc)
	}
	d, err := encode.EncodeBytes(doc, encode.EncodeComments(cfg.comments))
	if err != nil {
		return "", err
	}
	return string(d), nil
}
