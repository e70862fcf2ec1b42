package employee

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type employeeJSON struct {
	ID        ID     `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (e *Employee) MarshalJSON() ([]byte, error) {
	return json.Marshal(employeeJSON{ID: e.id, FirstName: e.firstName, LastName: e.lastName})
}

// ParseJSON decodes an employee object and validates it through New.
// Validation failures are returned as *ValidationError.
func ParseJSON(data []byte) (*Employee, error) {
	var raw employeeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return New(raw.ID, raw.FirstName, raw.LastName)
}

// UnmarshalJSON decodes through ParseJSON. On any error e is left untouched.
// A JSON null is a no-op.
//
// Decoders such as json-iterator prefix the returned error with their own
// context, so errors.Is and errors.As only hold when calling ParseJSON directly.
func (e *Employee) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	decoded, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*e = *decoded
	return nil
}
