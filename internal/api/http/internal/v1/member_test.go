package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cheechan-golf/backend/internal/domain"
	"github.com/cheechan-golf/backend/internal/service"
)

func testMember() *domain.Member {
	return &domain.Member{
		ID:                 uuid.MustParse("01900000-0000-7000-8000-000000000001"),
		Name:               "A",
		Surname:            "B",
		Fullname:           "A B",
		Mobile:             "0810000000",
		Email:              "a@x.com",
		StartPrivilegeDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestGetUserNotFound(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{err: service.ErrMemberNotFound}})

	rec := postJSON(t, router, http.MethodPost, "/user/getuser", `{"mobile":"0810000000"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"User not found"}`, rec.Body.String())
}

func TestGetUserMissingKeys(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{err: service.ErrMissingLookupKey}})

	rec := postJSON(t, router, http.MethodPost, "/user/getuser", `{}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUserSuccessEnvelope(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{member: testMember()}})

	rec := postJSON(t, router, http.MethodPost, "/user/getuser", `{"email":"a@x.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"success": true,
		"user": {
			"id": "01900000-0000-7000-8000-000000000001",
			"name": "A",
			"surname": "B",
			"fullname": "A B",
			"mobile": "0810000000",
			"email": "a@x.com",
			"birthdate": null,
			"startPrivilegeDate": "2024-01-02T03:04:05Z"
		}
	}`, rec.Body.String())
}

func TestAddOrUpdateCreatedMessage(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{member: testMember(), created: true}})

	rec := postJSON(t, router, http.MethodPost, "/user/add-or-update",
		`{"name":"A","surname":"B","mobile":"0810000000","email":"a@x.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "User added successfully")
}

func TestAddOrUpdateInvalidBirthdate(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{member: testMember()}})

	rec := postJSON(t, router, http.MethodPost, "/user/add-or-update",
		`{"name":"A","surname":"B","email":"a@x.com","birthdate":"not-a-date"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "birthdate")
}

func TestUpdateUnknownMobileIsServerError(t *testing.T) {
	router := setupRouter(&service.Services{Members: &fakeMembers{err: service.ErrMemberNotFound}})

	rec := postJSON(t, router, http.MethodPut, "/user/update",
		`{"name":"A","surname":"B","mobile":"0899999999","email":"a@x.com"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"success":false,"message":"Error updating user"}`, rec.Body.String())
}

func TestCheckConsentAbsentIsExplicitNull(t *testing.T) {
	router := setupRouter(&service.Services{Consents: &fakeConsents{}})

	rec := postJSON(t, router, http.MethodPost, "/user/check-consent", `{"email":"a@x.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true,"consent":null}`, rec.Body.String())
}

func TestSaveConsentCreated(t *testing.T) {
	consent := &domain.Consent{
		ID:        uuid.MustParse("01900000-0000-7000-8000-000000000002"),
		UserID:    uuid.MustParse("01900000-0000-7000-8000-000000000001"),
		Checkbox1: true,
		Checkbox2: false,
	}
	router := setupRouter(&service.Services{Consents: &fakeConsents{consent: consent}})

	rec := postJSON(t, router, http.MethodPost, "/user/saveConsent",
		`{"email":"a@x.com","checkbox1":true,"checkbox2":false}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, `{
		"success": true,
		"message": "Consent saved successfully!",
		"pdpa": {
			"id": "01900000-0000-7000-8000-000000000002",
			"userId": "01900000-0000-7000-8000-000000000001",
			"checkbox1": true,
			"checkbox2": false
		}
	}`, rec.Body.String())
}

func TestSaveConsentUnknownUser(t *testing.T) {
	router := setupRouter(&service.Services{Consents: &fakeConsents{err: service.ErrMemberNotFound}})

	rec := postJSON(t, router, http.MethodPost, "/user/saveConsent",
		`{"email":"nobody@x.com","checkbox1":true,"checkbox2":true}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProfileRenamedFields(t *testing.T) {
	profile := &domain.Profile{
		Fullname:           "A B",
		PhoneNumber:        "0810000000",
		Email:              "a@x.com",
		StartPrivilegeDate: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	router := setupRouter(&service.Services{Members: &fakeMembers{profile: profile}})

	rec := postJSON(t, router, http.MethodPost, "/user/get-profile", `{"email":"a@x.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"success": true,
		"user": {
			"fullname": "A B",
			"phonenumber": "0810000000",
			"birthdate": null,
			"email": "a@x.com",
			"startPrivilegeDate": "2024-01-02T03:04:05Z"
		}
	}`, rec.Body.String())
}
