package logsvc

import (
	"bytes"
	"log"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/elimu/core"
	"github.com/trezcool/elimu/core/school"
)

func newTestLogger() (*RollbarLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), core.NewTestConfig())
	return logger, &buf
}

func TestRollbarLoggerPrepare(t *testing.T) {
	logger, _ := newTestLogger()
	err := errors.New("boom")
	sess := school.Session{Role: school.RoleTeacher, UserID: "t1"}

	tests := []struct {
		name string
		args []interface{}
		want []interface{}
	}{
		{name: "message only", want: []interface{}{"saving"}},
		{name: "session is not forwarded", args: []interface{}{err, sess}, want: []interface{}{"saving", err}},
		{
			name: "only the first session is used",
			args: []interface{}{sess, map[string]interface{}{"op": "add_exam"}, school.Session{Role: school.RoleAdmin}},
			want: []interface{}{"saving", map[string]interface{}{"op": "add_exam"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.prepare("saving", tt.args))
		})
	}
}

func TestRollbarLoggerPrints(t *testing.T) {
	logger, buf := newTestLogger()

	logger.Warn("stored dataset is malformed", errors.New("unexpected EOF"))
	logger.Info("listening")

	out := buf.String()
	assert.Contains(t, out, "[WARN] stored dataset is malformed")
	assert.Contains(t, out, "unexpected EOF")
	assert.Contains(t, out, "[INFO] listening")
}
