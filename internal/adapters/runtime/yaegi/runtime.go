package yaegi

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"reflect"
	"sort"
	"strconv"

	"github.com/bnema/nova/internal/domain"
	"github.com/bnema/nova/internal/ports"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

const entryPoint = "Run"

// DefaultAllowedImports is the set of standard packages a feature fragment
// may import.
var DefaultAllowedImports = []string{
	"errors",
	"fmt",
	"math/rand",
	"net/mail",
	"sort",
	"strconv",
	"strings",
	"time",
}

// Runtime validates feature fragments and loads them into a yaegi
// interpreter. Each loaded feature gets its own interpreter.
type Runtime struct {
	allowed map[string]bool
}

var _ ports.FeatureRuntime = (*Runtime)(nil)

func NewRuntime(allowedImports ...string) *Runtime {
	if len(allowedImports) == 0 {
		allowedImports = DefaultAllowedImports
	}

	allowed := make(map[string]bool, len(allowedImports))
	for _, pkg := range allowedImports {
		allowed[pkg] = true
	}
	return &Runtime{allowed: allowed}
}

// Validate checks syntax, imports and the Run signature without keeping the
// compiled result.
func (r *Runtime) Validate(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := r.compile(source)
	return err
}

func (r *Runtime) Load(ctx context.Context, feature domain.FeatureDescriptor) (ports.FeatureFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := feature.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidFeatureSource, feature.Name, err)
	}

	run, err := r.compile(feature.Source)
	if err != nil {
		return nil, fmt.Errorf("load feature %s: %w", feature.Name, err)
	}
	return run, nil
}

func (r *Runtime) compile(source string) (ports.FeatureFunc, error) {
	if err := r.checkSource(source); err != nil {
		return nil, err
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("load interpreter stdlib: %w", err)
	}

	if _, err := evalSafely(i, source); err != nil {
		return nil, fmt.Errorf("%w: evaluate fragment: %v", domain.ErrInvalidFeatureSource, err)
	}

	value, err := evalSafely(i, "main."+entryPoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found: %v", domain.ErrInvalidFeatureSource, entryPoint, err)
	}

	run, ok := value.Interface().(func([]string) (string, error))
	if !ok {
		return nil, fmt.Errorf("%w: %s has signature %s, want func([]string) (string, error)", domain.ErrInvalidFeatureSource, entryPoint, value.Type())
	}
	return ports.FeatureFunc(run), nil
}

// checkSource parses the fragment with go/parser and rejects anything that is
// not a package main exposing a plain Run function with allowed imports.
func (r *Runtime) checkSource(source string) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "feature.go", source, parser.AllErrors)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidFeatureSource, err)
	}

	if file.Name.Name != "main" {
		return fmt.Errorf("%w: package %s, want main", domain.ErrInvalidFeatureSource, file.Name.Name)
	}

	var forbidden []string
	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return fmt.Errorf("%w: import %s: %v", domain.ErrInvalidFeatureSource, spec.Path.Value, err)
		}
		if !r.allowed[path] {
			forbidden = append(forbidden, path)
		}
	}
	if len(forbidden) > 0 {
		sort.Strings(forbidden)
		return fmt.Errorf("%w: forbidden imports %v", domain.ErrInvalidFeatureSource, forbidden)
	}

	for _, decl := range file.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if ok && fn.Recv == nil && fn.Name.Name == entryPoint {
			return nil
		}
	}
	return fmt.Errorf("%w: no %s function", domain.ErrInvalidFeatureSource, entryPoint)
}

// evalSafely converts interpreter panics into errors.
func evalSafely(i *interp.Interpreter, src string) (value reflect.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("interpreter panic: %v", rec)
		}
	}()
	return i.Eval(src)
}
