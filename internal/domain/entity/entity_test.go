package entity

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_AddCode(t *testing.T) {
	u := &User{}

	assert.True(t, u.AddCode("LL-AB12CD34"))
	assert.False(t, u.AddCode("LL-AB12CD34"))
	assert.Equal(t, []string{"LL-AB12CD34"}, u.QRCodes)
	assert.True(t, u.HasCode("LL-AB12CD34"))
	assert.False(t, u.HasCode("LL-ZZZZZZZZ"))
}

func TestQRCode_CanLinkTo(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name string
		code QRCode
		user uuid.UUID
		want bool
	}{
		{"unused code accepts anyone", QRCode{Status: CodeStatusUnused}, other, true},
		{"linked code accepts owner", QRCode{Status: CodeStatusLinked, LinkedUserID: &owner}, owner, true},
		{"linked code rejects other user", QRCode{Status: CodeStatusLinked, LinkedUserID: &owner}, other, false},
		{"sold code is terminal", QRCode{Status: CodeStatusSold}, owner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.CanLinkTo(tt.user))
		})
	}
}

func TestQRCode_Link(t *testing.T) {
	code := &QRCode{Status: CodeStatusUnused}
	userID := uuid.New()
	profileID := uuid.New()

	code.Link(userID, profileID)

	assert.Equal(t, CodeStatusLinked, code.Status)
	assert.Equal(t, userID, *code.LinkedUserID)
	assert.Equal(t, profileID, *code.EmergencyInfoID)
}

func TestEmergencyProfile_ApplyKeepsIdentity(t *testing.T) {
	id := uuid.New()
	p := &EmergencyProfile{ID: id, QRCode: "LL-AB12CD34", Name: "Old", IsActive: true}

	p.Apply(ProfileDetails{Name: "Jane Doe", EmergencyContact: "5551234567", BloodGroup: "O+"})

	assert.Equal(t, id, p.ID)
	assert.Equal(t, "LL-AB12CD34", p.QRCode)
	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "5551234567", p.EmergencyContact)
	assert.Equal(t, "O+", p.BloodGroup)
	assert.True(t, p.IsActive)
}

func TestRoles(t *testing.T) {
	roles := RolesFromStrings([]string{"user", "admin", "auditor", "admin"})

	assert.Equal(t, Roles{RoleUser, RoleAdmin}, roles)
	assert.True(t, roles.Contains(RoleAdmin))
	assert.Equal(t, []string{"user", "admin"}, roles.ToStrings())

	assert.Equal(t, Roles{RoleUser}, RolesFor(false))
	assert.Equal(t, Roles{RoleUser, RoleAdmin}, RolesFor(true))
	assert.Equal(t, []string{}, Roles(nil).ToStrings())
}

func TestCodeFilter_Offset(t *testing.T) {
	assert.Equal(t, 0, CodeFilter{Page: 0, PageSize: 10}.Offset())
	assert.Equal(t, 0, CodeFilter{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 20, CodeFilter{Page: 3, PageSize: 10}.Offset())

	last := CodeFilter{PageSize: 10}.MaxPage()
	assert.Equal(t, (last-1)*10, CodeFilter{Page: last, PageSize: 10}.Offset())
	assert.GreaterOrEqual(t, CodeFilter{Page: last, PageSize: 10}.Offset(), 0)
	assert.Equal(t, math.MaxInt, CodeFilter{Page: last + 1, PageSize: 10}.Offset())
	assert.Equal(t, math.MaxInt, CodeFilter{Page: math.MaxInt, PageSize: 10}.Offset())
	assert.Equal(t, math.MaxInt, CodeFilter{PageSize: 1}.MaxPage())
}
