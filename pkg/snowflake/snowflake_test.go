package snowflake

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleID is the snowflake used in the Discord API documentation.
const exampleID ID = 175928847299117063

func TestID_Time(t *testing.T) {
	want := time.Date(2016, time.April, 30, 11, 18, 25, 796e6, time.UTC)
	assert.Equal(t, want, exampleID.Time())
}

func TestID_Fields(t *testing.T) {
	assert.Equal(t, uint8(1), exampleID.Worker())
	assert.Equal(t, uint8(0), exampleID.Process())
	assert.Equal(t, uint16(7), exampleID.Increment())
}

func TestParse(t *testing.T) {
	id, err := Parse("175928847299117063")
	require.NoError(t, err)
	assert.Equal(t, exampleID, id)
	assert.Equal(t, "175928847299117063", id.String())
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "12.5", "99999999999999999999"} {
		_, err := Parse(s)
		assert.Error(t, err, "Parse(%q) should fail", s)
	}
}

func TestFromTime(t *testing.T) {
	created := exampleID.Time()
	floor := FromTime(created)

	assert.Equal(t, created, floor.Time())
	assert.LessOrEqual(t, floor, exampleID)
	assert.Equal(t, uint16(0), floor.Increment())
}

func TestID_JSON(t *testing.T) {
	data, err := json.Marshal(exampleID)
	require.NoError(t, err)
	assert.Equal(t, `"175928847299117063"`, string(data))

	var quoted ID
	require.NoError(t, json.Unmarshal([]byte(`"175928847299117063"`), &quoted))
	assert.Equal(t, exampleID, quoted)

	var bare ID
	require.NoError(t, json.Unmarshal([]byte(`175928847299117063`), &bare))
	assert.Equal(t, exampleID, bare)

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &bad))
}
