package school

import (
	"testing"

	"github.com/edumanage/portal/core"
)

func validTeacher() NewTeacher {
	return NewTeacher{
		FirstName: "Jane",
		LastName:  "Mwangi",
		Email:     "jane@school.test",
		Phone:     "0700000001",
		Password:  "G00d&Plenty",
		Position:  "Teacher",
	}
}

func TestTeacherPasswordPolicy(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		wantErr bool
	}{
		{name: "valid", pwd: "G00d&Plenty"},
		{name: "too short", pwd: "L0l!", wantErr: true},
		{name: "whitespace", pwd: "G00d &Plenty", wantErr: true},
		{name: "all numeric", pwd: "123456789", wantErr: true},
		{name: "no special char", pwd: "G00dPlenty", wantErr: true},
		{name: "no uppercase", pwd: "g00d&plenty", wantErr: true},
		{name: "similar to email", pwd: "Jane@school.test1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nt := validTeacher()
			nt.Password = tt.pwd
			err := core.Validate.Struct(nt)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParentPasswordsMustMatch(t *testing.T) {
	np := NewParent{
		FirstName:       "Paul",
		LastName:        "Otieno",
		Email:           "paul@school.test",
		Phone:           "0700000002",
		Password:        "G00d&Plenty",
		ConfirmPassword: "Different1!",
		RegNo:           "REG001",
	}
	err := core.TranslateValidationErrors(core.Validate.Struct(np))
	vErr, ok := err.(*core.ValidationError)
	if !ok {
		t.Fatalf("Validate() error = %v, want *core.ValidationError", err)
	}
	var found bool
	for _, f := range vErr.Fields {
		if f.Field == "confirmPassword" {
			found = true
		}
	}
	if !found {
		t.Errorf("fields = %v, want a confirmPassword error", vErr.Fields)
	}
}
