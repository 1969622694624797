package strz_test

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	strz "github.com/strz/go-strz"
)

type yamlHost struct {
	IP strz.Str[net.IP, *net.IP] `yaml:"ip"`
}

type yamlOptHost struct {
	IP strz.Opt[net.IP, *net.IP] `yaml:"ip"`
}

type yamlEmpHost struct {
	IP strz.Emp[net.IP, *net.IP] `yaml:"ip"`
}

func TestStrYAML(t *testing.T) {
	t.Run("it reads and writes the field as a string scalar", func(t *testing.T) {
		var host yamlHost
		require.NoError(t, yaml.Unmarshal([]byte(`ip: 127.0.0.1`), &host))
		assert.Equal(t, net.ParseIP("127.0.0.1"), host.IP.Value)

		data, err := yaml.Marshal(host)
		require.NoError(t, err)
		assert.Equal(t, "ip: 127.0.0.1\n", string(data))
	})

	t.Run("it rejects non-scalar input", func(t *testing.T) {
		var host yamlHost
		err := yaml.Unmarshal([]byte("ip:\n  - 127.0.0.1"), &host)
		assert.ErrorIs(t, err, strz.ErrNotString)
	})

	t.Run("it surfaces parse failures", func(t *testing.T) {
		var host yamlHost
		err := yaml.Unmarshal([]byte(`ip: not-an-ip`), &host)

		var parseErr strz.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, "not-an-ip", parseErr.Input())
	})
}

func TestOptYAML(t *testing.T) {
	t.Run("null reads as no value", func(t *testing.T) {
		var host yamlOptHost
		require.NoError(t, yaml.Unmarshal([]byte(`ip: null`), &host))
		assert.False(t, host.IP.Value.IsSome())
	})

	t.Run("null clears a previously present value", func(t *testing.T) {
		host := yamlOptHost{
			IP: strz.NewOptValue(net.ParseIP("10.0.0.1")),
		}

		require.NoError(t, yaml.Unmarshal([]byte(`ip: ~`), &host))
		assert.False(t, host.IP.Value.IsSome())
	})

	t.Run("no value writes back as null", func(t *testing.T) {
		data, err := yaml.Marshal(yamlOptHost{})
		require.NoError(t, err)
		assert.Equal(t, "ip: null\n", string(data))
	})

	t.Run("a present value rides the text bridge", func(t *testing.T) {
		var host yamlOptHost
		require.NoError(t, yaml.Unmarshal([]byte(`ip: 192.0.2.1`), &host))
		require.True(t, host.IP.Value.IsSome())
		assert.Equal(t, net.ParseIP("192.0.2.1"), host.IP.Value.Unwrap())
	})
}

func TestEmpYAML(t *testing.T) {
	t.Run("the empty string reads as no value", func(t *testing.T) {
		var host yamlEmpHost
		require.NoError(t, yaml.Unmarshal([]byte(`ip: ""`), &host))
		assert.False(t, host.IP.Value.IsSome())
	})

	t.Run("null clears a previously present value", func(t *testing.T) {
		host := yamlEmpHost{
			IP: strz.NewEmpValue(net.ParseIP("10.0.0.1")),
		}

		require.NoError(t, yaml.Unmarshal([]byte(`ip: null`), &host))
		assert.False(t, host.IP.Value.IsSome())
	})

	t.Run("no value writes back as the empty string", func(t *testing.T) {
		data, err := yaml.Marshal(yamlEmpHost{})
		require.NoError(t, err)
		assert.Equal(t, "ip: \"\"\n", string(data))
	})

	t.Run("a present value rides the text bridge", func(t *testing.T) {
		host := yamlEmpHost{
			IP: strz.NewEmpValue(net.ParseIP("192.0.2.1")),
		}

		data, err := yaml.Marshal(host)
		require.NoError(t, err)
		assert.Equal(t, "ip: 192.0.2.1\n", string(data))

		var decoded yamlEmpHost
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		require.True(t, decoded.IP.Value.IsSome())
		assert.Equal(t, net.ParseIP("192.0.2.1"), decoded.IP.Value.Unwrap())
	})
}
