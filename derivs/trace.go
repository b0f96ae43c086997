package derivs

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

type tracer struct {
	t      *Table
	prefix string
}

// enterf logs entry into a rule evaluation at trace level and returns the
// tracer that logs its exit. Both are no-ops unless tracing is enabled.
func (t *Table) enterf(format string, args ...any) *tracer {
	if !logrus.IsLevelEnabled(logrus.TraceLevel) {
		return nil
	}
	tr := &tracer{t: t, prefix: fmt.Sprintf(format, args...)}
	logrus.Tracef("%s--> %s", strings.Repeat("  ", t.depth), tr.prefix)
	t.depth++
	return tr
}

func (tr *tracer) exitf(format string, args ...any) {
	if tr == nil {
		return
	}
	tr.t.depth--
	logrus.Tracef("%s<-- %s = %s", strings.Repeat("  ", tr.t.depth), tr.prefix, fmt.Sprintf(format, args...))
}
