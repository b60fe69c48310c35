package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const markPending = "pending"

// Mark is a tagged variant: either a numeric grade or the pending state.
// On the wire (JSON and BSON) the pending state is encoded as the legacy
// "pending" string so existing documents and clients keep working.
type Mark struct {
	Graded bool
	Value  float64
}

// GradedMark returns a graded mark
func GradedMark(value float64) Mark {
	return Mark{Graded: true, Value: value}
}

// PendingMark returns the not-yet-graded mark
func PendingMark() Mark {
	return Mark{}
}

// MarshalJSON implements json.Marshaler
func (m Mark) MarshalJSON() ([]byte, error) {
	if !m.Graded {
		return json.Marshal(markPending)
	}
	return json.Marshal(m.Value)
}

// UnmarshalJSON implements json.Unmarshaler. Accepts a number, the "pending"
// sentinel, or a numeric string (legacy documents stored marks as strings).
func (m *Mark) UnmarshalJSON(data []byte) error {
	var value float64
	if err := json.Unmarshal(data, &value); err == nil {
		*m = GradedMark(value)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("mark must be a number or %q", markPending)
	}
	return m.fromString(s)
}

// MarshalBSONValue implements bson.ValueMarshaler
func (m Mark) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !m.Graded {
		return bson.MarshalValue(markPending)
	}
	return bson.MarshalValue(m.Value)
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler
func (m *Mark) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		v, _ := rv.DoubleOK()
		*m = GradedMark(v)
		return nil
	case bsontype.Int32:
		v, _ := rv.Int32OK()
		*m = GradedMark(float64(v))
		return nil
	case bsontype.Int64:
		v, _ := rv.Int64OK()
		*m = GradedMark(float64(v))
		return nil
	case bsontype.String:
		s, _ := rv.StringValueOK()
		return m.fromString(s)
	default:
		return fmt.Errorf("cannot decode %v into a mark", t)
	}
}

func (m *Mark) fromString(s string) error {
	if s == markPending {
		*m = PendingMark()
		return nil
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("mark must be a number or %q", markPending)
	}
	*m = GradedMark(value)
	return nil
}

// Assignment defines an assignment document in the 'assignments' collection
type Assignment struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	StudentEmail string             `json:"studentEmail" bson:"studentEmail"`
	TeacherEmail string             `json:"teacherEmail" bson:"teacherEmail"`
	CourseID     primitive.ObjectID `json:"courseId,omitempty" bson:"courseId,omitempty"`
	Submission   string             `json:"submission,omitempty" bson:"submission,omitempty"`
	Mark         Mark               `json:"mark" bson:"mark"`
	Feedback     string             `json:"feedback,omitempty" bson:"feedback,omitempty"`
	CreatedAt    time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
