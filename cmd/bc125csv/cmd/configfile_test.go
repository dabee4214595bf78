package cmd

import (
	"bytes"
	"testing"
	"text/template"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brocaar/bc125csv/internal/config"
)

func TestConfigTemplate(t *testing.T) {
	assert := require.New(t)

	var c config.Config
	c.General.LogLevel = 4
	c.Scanner.Port = "/dev/ttyACM0"
	c.Scanner.BaudRate = 9600
	c.Scanner.ReadTimeout = 3 * time.Second
	c.Scanner.Virtual = false

	var b bytes.Buffer
	tmpl := template.Must(template.New("config").Parse(configTemplate))
	assert.NoError(tmpl.Execute(&b, &c))

	out := b.String()
	assert.Contains(out, "log_level=4")
	assert.Contains(out, `port="/dev/ttyACM0"`)
	assert.Contains(out, "baud_rate=9600")
	assert.Contains(out, `read_timeout="3s"`)
	assert.Contains(out, "virtual=false")
}
