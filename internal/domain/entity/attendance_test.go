package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendance_MarshalJSON_DateOnly(t *testing.T) {
	record := Attendance{
		ID:          4,
		Date:        time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Division:    "10A",
		Year:        "2025",
		RollNumber:  12,
		StudentName: "Anjali",
		Status:      AttendancePresent,
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "2025-06-02", fields["date"])
	assert.NotContains(t, string(data), "T00:00:00")
}

func TestAttendance_UnmarshalJSON_DateOnly(t *testing.T) {
	payload := `{"date":"2025-06-02","division":"10A","roll_number":12,"student_name":"Anjali","status":"Absent"}`

	var record Attendance
	require.NoError(t, json.Unmarshal([]byte(payload), &record))

	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), record.Date)
	assert.Equal(t, "10A", record.Division)
	assert.Equal(t, AttendanceAbsent, record.Status)
}

func TestAttendance_JSONRoundTrip(t *testing.T) {
	original := Attendance{
		Date:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		Division: "9B",
		Status:   AttendancePresent,
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Attendance
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.Date, decoded.Date)
}
