package shell

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/packship/packship/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	errs  []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(string) {}

func (l *recordingLogger) Error(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errs = append(l.errs, err.Error())
}

func testProject(argv []string) *domain.Project {
	return &domain.Project{PublishCommand: argv}
}

func testPkg(t *testing.T) *domain.Package {
	t.Helper()
	return &domain.Package{Key: "acme-widget", Name: "Acme-Widget", Dir: t.TempDir()}
}

func TestPublish_Success(t *testing.T) {
	log := &recordingLogger{}
	p := NewPublisher(log)

	project := testProject([]string{"sh", "-c", "echo published {name}@{version}"})
	err := p.Publish(context.Background(), project, testPkg(t), 2)
	require.NoError(t, err)

	require.NotEmpty(t, log.infos)
	assert.Contains(t, log.infos[0], "published Acme-Widget@2")
}

func TestPublish_NonZeroExit(t *testing.T) {
	log := &recordingLogger{}
	p := NewPublisher(log)

	project := testProject([]string{"sh", "-c", "exit 3"})
	err := p.Publish(context.Background(), project, testPkg(t), 1)
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, 3, zErr.Metadata()["exit_code"])
}

func TestPublish_NoCommandConfigured(t *testing.T) {
	p := NewPublisher(&recordingLogger{})

	err := p.Publish(context.Background(), testProject(nil), testPkg(t), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestPublish_StderrGoesToErrorLog(t *testing.T) {
	log := &recordingLogger{}
	p := NewPublisher(log)

	project := testProject([]string{"sh", "-c", "echo oops >&2"})
	err := p.Publish(context.Background(), project, testPkg(t), 1)
	require.NoError(t, err)

	require.NotEmpty(t, log.errs)
	assert.Contains(t, log.errs[0], "oops")
}

func TestExpandCommand(t *testing.T) {
	pkg := &domain.Package{Key: "acme-widget", Name: "Acme-Widget", Dir: "/srv/content/widgets"}

	out := expandCommand([]string{"registry-cli", "push", "{name}@{version}", "--dir", "{dir}"}, pkg, 7)
	assert.Equal(t, []string{"registry-cli", "push", "Acme-Widget@7", "--dir", "/srv/content/widgets"}, out)
}

func TestMergeEnvironment_Overrides(t *testing.T) {
	out := mergeEnvironment([]string{"PATH=/usr/bin", "HOME=/home/u"}, map[string]string{"HOME": "/tmp", "TOKEN": "secret"})

	envMap := make(map[string]string, len(out))
	for _, entry := range out {
		for i := 0; i < len(entry); i++ {
			if entry[i] == '=' {
				envMap[entry[:i]] = entry[i+1:]
				break
			}
		}
	}

	assert.Equal(t, "/usr/bin", envMap["PATH"])
	assert.Equal(t, "/tmp", envMap["HOME"])
	assert.Equal(t, "secret", envMap["TOKEN"])
}
