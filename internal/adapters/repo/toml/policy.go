package toml

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/bnema/nova/internal/domain"
)

const manifestPolicySource = `
#Feature: close({
	name:         %s
	topic:        string
	checksum:     =~"^[0-9a-f]{64}$"
	installed_at: string & !=""
	source:       string & =~"package main" & =~"func Run\\("
})

version:    %d
generation: int & >=1
features:   [...#Feature]
`

// Policy checks a manifest against the CUE schema before it is committed.
// Uniqueness and checksum agreement are checked in Go; CUE covers shape and
// value constraints.
type Policy struct {
	schemaSrc string
}

func NewPolicy() (*Policy, error) {
	names := make([]string, 0, len(domain.FeatureCatalog))
	for _, name := range domain.FeatureCatalog {
		names = append(names, strconv.Quote(string(name)))
	}

	src := fmt.Sprintf(manifestPolicySource, strings.Join(names, " | "), currentSchemaVersion)
	policy := &Policy{schemaSrc: "close({" + src + "})"}

	// Compile once up front so a broken schema fails at construction.
	if _, err := policy.compile(cuecontext.New()); err != nil {
		return nil, err
	}
	return policy, nil
}

// Validate reports the first violation found in file. A cue.Context is not
// safe for concurrent use, so each call builds its own.
func (p *Policy) Validate(file manifestSchema) error {
	ctx := cuecontext.New()
	schema, err := p.compile(ctx)
	if err != nil {
		return err
	}

	file.applyDefaults()
	value := ctx.Encode(file)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode manifest for policy: %w", err)
	}
	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("manifest policy: %w", err)
	}

	seen := make(map[string]struct{}, len(file.Features))
	for _, entry := range file.Features {
		if _, ok := seen[entry.Name]; ok {
			return fmt.Errorf("manifest policy: feature %s listed twice", entry.Name)
		}
		seen[entry.Name] = struct{}{}

		if domain.SourceChecksum(entry.Source) != entry.Checksum {
			return fmt.Errorf("manifest policy: checksum mismatch for %s", entry.Name)
		}
		if _, err := time.Parse(installedTimeLayout, entry.InstalledAt); err != nil {
			return fmt.Errorf("manifest policy: installed_at for %s: %w", entry.Name, err)
		}
	}

	return nil
}

func (p *Policy) compile(ctx *cue.Context) (cue.Value, error) {
	schema := ctx.CompileString(p.schemaSrc, cue.Filename("manifest_policy.cue"))
	if err := schema.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("compile manifest policy: %w", err)
	}
	return schema, nil
}
