// golangcilintderivemore package provides a plugin for golangci-lint to
// integrate the derivemore analyzer. To build a custom golangci-lint binary
// with this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-derivemore binary that you can use to
// lint your Go code with the derivemore analyzer.
package golangcilintderivemore

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/ErmitaVulpe/derive-more/pkg/deriveanalysis"
)

func init() {
	register.Plugin("derivemore", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return DeriveMoreLinter{}, nil
}

type DeriveMoreLinter struct{}

func (DeriveMoreLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{deriveanalysis.Analyzer}, nil
}

func (DeriveMoreLinter) GetLoadMode() string {
	return register.LoadModeSyntax
}
