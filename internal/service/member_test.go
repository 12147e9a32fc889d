package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestMemberService() (*memberService, *fakeMemberRepo, *fakeConsentRepo) {
	memberRepo := &fakeMemberRepo{}
	consentRepo := newFakeConsentRepo()
	return newMemberService(memberRepo, consentRepo), memberRepo, consentRepo
}

func TestAddOrUpdateCreatesWithFullname(t *testing.T) {
	svc, _, _ := newTestMemberService()

	member, created, err := svc.AddOrUpdate(context.Background(), AddOrUpdateInput{
		Name:    "A",
		Surname: "B",
		Mobile:  "0810000000",
		Email:   "a@x.com",
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, "A B", member.Fullname)
	require.False(t, member.StartPrivilegeDate.IsZero())
}

func TestAddOrUpdatePreservesStartPrivilegeDate(t *testing.T) {
	svc, _, _ := newTestMemberService()
	ctx := context.Background()

	first, created, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0810000000", Email: "a@x.com",
	})
	require.NoError(t, err)
	require.True(t, created)

	birthdate := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	second, created, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "C", Mobile: "0810000000", Email: "a@x.com", Birthdate: &birthdate,
	})
	require.NoError(t, err)
	require.False(t, created)

	require.Equal(t, first.StartPrivilegeDate, second.StartPrivilegeDate)
	require.NotNil(t, second.Birthdate)
	require.Equal(t, birthdate, *second.Birthdate)
	require.Equal(t, "A C", second.Fullname)
	require.Equal(t, first.ID, second.ID)
}

func TestAddOrUpdateRequiresLookupKey(t *testing.T) {
	svc, _, _ := newTestMemberService()

	_, _, err := svc.AddOrUpdate(context.Background(), AddOrUpdateInput{Name: "A", Surname: "B"})
	require.ErrorIs(t, err, ErrMissingLookupKey)
}

func TestGetPrefersEmail(t *testing.T) {
	svc, _, _ := newTestMemberService()
	ctx := context.Background()

	_, _, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0810000000", Email: "a@x.com",
	})
	require.NoError(t, err)
	_, _, err = svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "C", Surname: "D", Mobile: "0820000000", Email: "c@x.com",
	})
	require.NoError(t, err)

	// Email wins even when the mobile belongs to someone else.
	member, err := svc.Get(ctx, "0810000000", "c@x.com")
	require.NoError(t, err)
	require.Equal(t, "c@x.com", member.Email)

	member, err = svc.Get(ctx, "0810000000", "")
	require.NoError(t, err)
	require.Equal(t, "a@x.com", member.Email)
}

func TestGetMissingKeysAndNotFound(t *testing.T) {
	svc, _, _ := newTestMemberService()
	ctx := context.Background()

	_, err := svc.Get(ctx, "", "")
	require.ErrorIs(t, err, ErrMissingLookupKey)

	_, err = svc.Get(ctx, "0810000000", "")
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestGetAttachesConsent(t *testing.T) {
	svc, _, consentRepo := newTestMemberService()
	ctx := context.Background()

	member, _, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0810000000", Email: "a@x.com",
	})
	require.NoError(t, err)

	found, err := svc.Get(ctx, "", "a@x.com")
	require.NoError(t, err)
	require.Nil(t, found.Pdpa)

	consentSvc := newConsentService(svc.memberRepository, consentRepo)
	_, err = consentSvc.Save(ctx, "", "a@x.com", true, false)
	require.NoError(t, err)

	found, err = svc.Get(ctx, "", "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, found.Pdpa)
	require.Equal(t, member.ID, found.Pdpa.UserID)
}

func TestUpdateByMobileUnknownMobile(t *testing.T) {
	svc, _, _ := newTestMemberService()

	_, err := svc.UpdateByMobile(context.Background(), AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0899999999", Email: "a@x.com",
	})
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestProfileRenamesMobile(t *testing.T) {
	svc, _, _ := newTestMemberService()
	ctx := context.Background()

	_, _, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0810000000", Email: "a@x.com",
	})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "A B", profile.Fullname)
	require.Equal(t, "0810000000", profile.PhoneNumber)

	_, err = svc.Profile(ctx, "nobody@x.com")
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestUpdateProfileSplitsFullname(t *testing.T) {
	svc, _, _ := newTestMemberService()
	ctx := context.Background()

	_, _, err := svc.AddOrUpdate(ctx, AddOrUpdateInput{
		Name: "A", Surname: "B", Mobile: "0810000000", Email: "a@x.com",
	})
	require.NoError(t, err)

	member, err := svc.UpdateProfile(ctx, ProfileInput{
		Email:       "a@x.com",
		Fullname:    "Somchai Na Ayutthaya",
		PhoneNumber: "0899999999",
	})
	require.NoError(t, err)
	require.Equal(t, "Somchai", member.Name)
	require.Equal(t, "Na Ayutthaya", member.Surname)
	require.Equal(t, "0899999999", member.Mobile)
}

func TestSplitFullname(t *testing.T) {
	tests := []struct {
		fullname string
		name     string
		surname  string
	}{
		{"A B", "A", "B"},
		{"Somchai Na Ayutthaya", "Somchai", "Na Ayutthaya"},
		{"Single", "Single", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		name, surname := splitFullname(tt.fullname)
		require.Equal(t, tt.name, name)
		require.Equal(t, tt.surname, surname)
	}
}
