package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIndex(t *testing.T) {
	tests := []struct {
		in            string
		expected      int
		expectedError bool
	}{
		{in: "1", expected: 1},
		{in: "500", expected: 500},
		{in: "042", expected: 42},
		{in: "0", expectedError: true},
		{in: "501", expectedError: true},
		{in: "-1", expectedError: true},
		{in: "abc", expectedError: true},
		{in: "", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)
			index, err := ParseIndex(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, index)
		})
	}
}

func TestParseName(t *testing.T) {
	tests := []struct {
		name          string
		in            string
		expectedError bool
	}{
		{name: "plain", in: "PMR Channel 1"},
		{name: "empty", in: ""},
		{name: "punctuation", in: "!@#$%&*()-/<>.? "},
		{name: "max length", in: "ABCDEFGHIJKLMNOP"},
		{name: "too long", in: "ABCDEFGHIJKLMNOPQ", expectedError: true},
		{name: "comma", in: "a,b", expectedError: true},
		{name: "non-ascii", in: "Zürich", expectedError: true},
		{name: "control char", in: "tab\there", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)
			_, err := ParseName(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in            string
		expected      string
		expectedError bool
	}{
		{in: "446.0062", expected: "446.0062"},
		{in: "446.006200", expected: "446.0062"},
		{in: "0446.0062", expected: "446.0062"},
		{in: "446006.2", expected: "446.0062"},
		{in: "446006.2 kHz", expected: "446.0062"},
		{in: "446.0062 MHz", expected: "446.0062"},
		{in: "446.0062mhz", expected: "446.0062"},
		{in: " 122.25 ", expected: "122.2500"},
		{in: "446", expected: "446.0000"},
		{in: "25", expected: "25.0000"},
		{in: "512", expected: "512.0000"},
		{in: "abc", expectedError: true},
		{in: "", expectedError: true},
		{in: "446.", expectedError: true},
		{in: "446,0062", expectedError: true},
		{in: "0", expectedError: true},
		{in: "24.9999", expectedError: true},
		{in: "512.0001", expectedError: true},
		{in: "12345678", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)
			freq, err := ParseFrequency(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, freq)
		})
	}
}

func TestParseModulation(t *testing.T) {
	tests := []struct {
		in            string
		expected      Modulation
		expectedError bool
	}{
		{in: "", expected: ModulationAuto},
		{in: "AUTO", expected: ModulationAuto},
		{in: "am", expected: ModulationAM},
		{in: "FM", expected: ModulationFM},
		{in: "nfm", expected: ModulationNFM},
		{in: "WFM", expectedError: true},
		{in: "F M", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)
			mod, err := ParseModulation(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, mod)
		})
	}
}

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in            string
		expected      int
		expectedError bool
	}{
		{in: "", expected: 2},
		{in: "-10", expected: -10},
		{in: "-5", expected: -5},
		{in: "0", expected: 0},
		{in: "5", expected: 5},
		{in: "6", expectedError: true},
		{in: "-1", expectedError: true},
		{in: "x", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)
			delay, err := ParseDelay(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, delay)
		})
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in            string
		expected      bool
		expectedError bool
	}{
		{in: "", expected: false},
		{in: "0", expected: false},
		{in: "no", expected: false},
		{in: "FALSE", expected: false},
		{in: "1", expected: true},
		{in: "yes", expected: true},
		{in: "True", expected: true},
		{in: "maybe", expectedError: true},
		{in: "2", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.in, func(t *testing.T) {
			assert := require.New(t)
			b, err := ParseBool(tst.in)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, b)
		})
	}
}

func TestFrequencyCode(t *testing.T) {
	tests := []struct {
		frequency string
		code      string
	}{
		{frequency: "446.0062", code: "04460062"},
		{frequency: "25.0000", code: "00250000"},
		{frequency: "512.0000", code: "05120000"},
		{frequency: "1240.0000", code: "12400000"},
	}

	for _, tst := range tests {
		t.Run(tst.frequency, func(t *testing.T) {
			assert := require.New(t)
			c := Channel{Frequency: tst.frequency}
			assert.Equal(tst.code, c.FrequencyCode())

			freq, err := FrequencyFromCode(tst.code)
			assert.NoError(err)
			assert.Equal(tst.frequency, freq)
		})
	}
}

func TestFrequencyFromCode(t *testing.T) {
	tests := []struct {
		code          string
		expected      string
		expectedError bool
	}{
		{code: "00000000", expected: "0.0000"},
		{code: "04460062", expected: "446.0062"},
		{code: "1220500", expected: "122.0500"},
		{code: "12345", expected: "1.2345"},
		{code: "1234", expectedError: true},
		{code: "123456789", expectedError: true},
		{code: "0446xx62", expectedError: true},
		{code: "", expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.code, func(t *testing.T) {
			assert := require.New(t)
			freq, err := FrequencyFromCode(tst.code)
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
			assert.Equal(tst.expected, freq)
		})
	}
}

func TestBank(t *testing.T) {
	tests := []struct {
		index int
		bank  int
	}{
		{index: 1, bank: 1},
		{index: 50, bank: 1},
		{index: 51, bank: 2},
		{index: 100, bank: 2},
		{index: 451, bank: 10},
		{index: 500, bank: 10},
	}

	for _, tst := range tests {
		assert := require.New(t)
		assert.Equal(tst.bank, Channel{Index: tst.index}.Bank())

		first, last := BankRange(tst.bank)
		assert.LessOrEqual(first, tst.index)
		assert.GreaterOrEqual(last, tst.index)
	}
}

func TestValidate(t *testing.T) {
	valid := Channel{
		Index:      1,
		Name:       "PMR Channel 1",
		Frequency:  "446.0062",
		Modulation: ModulationFM,
		ToneCode:   0,
		Delay:      2,
	}

	tests := []struct {
		name          string
		mutate        func(c *Channel)
		expectedError bool
	}{
		{name: "valid", mutate: func(c *Channel) {}},
		{name: "index out of range", mutate: func(c *Channel) { c.Index = 501 }, expectedError: true},
		{name: "bad name", mutate: func(c *Channel) { c.Name = "a,b" }, expectedError: true},
		{name: "bad frequency", mutate: func(c *Channel) { c.Frequency = "0.0000" }, expectedError: true},
		{name: "bad modulation", mutate: func(c *Channel) { c.Modulation = "WFM" }, expectedError: true},
		{name: "bad tone code", mutate: func(c *Channel) { c.ToneCode = 255 }, expectedError: true},
		{name: "bad delay", mutate: func(c *Channel) { c.Delay = 7 }, expectedError: true},
	}

	for _, tst := range tests {
		t.Run(tst.name, func(t *testing.T) {
			assert := require.New(t)
			c := valid
			tst.mutate(&c)
			err := c.Validate()
			if tst.expectedError {
				assert.Error(err)
				return
			}
			assert.NoError(err)
		})
	}
}
