package billing_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saveloop/saveloop/internal/billing"
	"github.com/saveloop/saveloop/internal/models"
	"github.com/saveloop/saveloop/internal/store"
	"github.com/saveloop/saveloop/internal/testutil"
)

func newService(t *testing.T) (*billing.Service, *store.Store, *models.User) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	st := store.New(db)
	user, err := st.CreateUser("quota-user", "quota@example.com", "hash", "user")
	require.NoError(t, err)
	return billing.NewService(st), st, user
}

// completedDownload runs a row through its whole lifecycle so the data
// cap sees it. Claiming flips any older queued rows to downloading as
// a side effect, so callers create this row first.
func completedDownload(t *testing.T, st *store.Store, user *models.User, kind models.ContentType, size int64) {
	t.Helper()
	d, err := st.CreateDownload(user.ID, "https://www.youtube.com/watch?v=x", "youtube", "720p", kind, nil)
	require.NoError(t, err)
	claimed, err := st.ClaimQueuedDownloads(10)
	require.NoError(t, err)
	var found bool
	for _, c := range claimed {
		if c.ID == d.ID {
			found = true
		}
	}
	require.True(t, found, "row was not claimed")
	ok, err := st.CompleteDownload(d.ID, "/tmp/file.mp4", size, nil, nil)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestEffectivePlan(t *testing.T) {
	svc, st, user := newService(t)

	t.Run("No subscription means free", func(t *testing.T) {
		assert.Equal(t, "free", svc.EffectivePlan(user).ID)
	})

	t.Run("Nil user means free", func(t *testing.T) {
		assert.Equal(t, "free", svc.EffectivePlan(nil).ID)
	})

	t.Run("Active subscription grants its plan", func(t *testing.T) {
		expires := time.Now().AddDate(0, 1, 0)
		payID := "stripe_1"
		_, err := st.ActivateSubscription(user.ID, "basic", &payID, &expires)
		require.NoError(t, err)
		assert.Equal(t, "basic", svc.EffectivePlan(user).ID)
	})

	t.Run("Legacy identifier maps to current plan", func(t *testing.T) {
		expires := time.Now().AddDate(0, 1, 0)
		_, err := st.ActivateSubscription(user.ID, "premium_plus", nil, &expires)
		require.NoError(t, err)
		assert.Equal(t, "pro", svc.EffectivePlan(user).ID)
	})

	t.Run("Unknown identifier degrades to free", func(t *testing.T) {
		expires := time.Now().AddDate(0, 1, 0)
		_, err := st.ActivateSubscription(user.ID, "platinum_deluxe", nil, &expires)
		require.NoError(t, err)
		assert.Equal(t, "free", svc.EffectivePlan(user).ID)
	})

	t.Run("Expired subscription degrades to free", func(t *testing.T) {
		expired := time.Now().Add(-time.Hour)
		_, err := st.ActivateSubscription(user.ID, "pro", nil, &expired)
		require.NoError(t, err)
		assert.Equal(t, "free", svc.EffectivePlan(user).ID)
	})

	t.Run("Cancelled subscription degrades to free", func(t *testing.T) {
		expires := time.Now().AddDate(0, 1, 0)
		_, err := st.ActivateSubscription(user.ID, "pro", nil, &expires)
		require.NoError(t, err)
		_, err = st.CancelCurrentSubscription(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "free", svc.EffectivePlan(user).ID)
	})
}

func TestCanDownloadCountGate(t *testing.T) {
	svc, st, user := newService(t)
	ctx := context.Background()

	// Free tier allows 5 videos a day. Fill the quota, counting failed
	// attempts too.
	for i := 0; i < 4; i++ {
		_, err := st.CreateDownload(user.ID, "https://www.youtube.com/watch?v=x", "youtube", "720p", models.ContentVideo, nil)
		require.NoError(t, err)
	}
	d, err := st.CreateDownload(user.ID, "https://www.youtube.com/watch?v=y", "youtube", "720p", models.ContentVideo, nil)
	require.NoError(t, err)
	_, err = st.ClaimQueuedDownloads(5)
	require.NoError(t, err)
	failed, err := st.FailDownload(d.ID, "boom")
	require.NoError(t, err)
	require.True(t, failed)

	err = svc.CanDownload(ctx, user, models.ContentVideo)
	var qe *billing.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, billing.QuotaCount, qe.Kind)
	assert.Contains(t, qe.Message, "video")

	// The image quota is independent.
	assert.NoError(t, svc.CanDownload(ctx, user, models.ContentImage))
}

func TestCanDownloadDataCap(t *testing.T) {
	svc, st, user := newService(t)
	ctx := context.Background()

	completedDownload(t, st, user, models.ContentVideo, 3*1024*1024*1024)

	err := svc.CanDownload(ctx, user, models.ContentVideo)
	var qe *billing.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, billing.QuotaData, qe.Kind)

	// The cap only binds the free tier.
	expires := time.Now().AddDate(0, 1, 0)
	_, err = st.ActivateSubscription(user.ID, "basic", nil, &expires)
	require.NoError(t, err)
	assert.NoError(t, svc.CanDownload(ctx, user, models.ContentVideo))
}

func TestCanDownloadUnlimited(t *testing.T) {
	svc, st, user := newService(t)
	ctx := context.Background()

	expires := time.Now().AddDate(0, 1, 0)
	_, err := st.ActivateSubscription(user.ID, "pro", nil, &expires)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		_, err := st.CreateDownload(user.ID, "https://vimeo.com/1", "vimeo", "Best", models.ContentVideo, nil)
		require.NoError(t, err)
	}
	assert.NoError(t, svc.CanDownload(ctx, user, models.ContentVideo))
}

func TestCanDownloadUnauthenticated(t *testing.T) {
	svc, _, _ := newService(t)
	assert.ErrorIs(t, svc.CanDownload(context.Background(), nil, models.ContentVideo), billing.ErrUnauthenticated)
}

func TestResolveQuality(t *testing.T) {
	free := billing.FreePlan()
	basic, _ := billing.PlanByID("basic")

	cases := []struct {
		name      string
		plan      billing.Plan
		kind      models.ContentType
		requested string
		want      string
	}{
		{"free video Best clamps", free, models.ContentVideo, "Best", "720p"},
		{"free video 1080p clamps", free, models.ContentVideo, "1080p", "720p"},
		{"free video 4K clamps", free, models.ContentVideo, "4K", "720p"},
		{"free video 480p passes", free, models.ContentVideo, "480p", "480p"},
		{"free image Best passes", free, models.ContentImage, "Best", "Best"},
		{"basic video Best passes", basic, models.ContentVideo, "Best", "Best"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.ResolveQuality(tc.plan, tc.kind, tc.requested))
		})
	}
}

func TestUsage(t *testing.T) {
	svc, st, user := newService(t)
	ctx := context.Background()

	completedDownload(t, st, user, models.ContentVideo, 1024*1024)
	_, err := st.CreateDownload(user.ID, "https://www.youtube.com/watch?v=a", "youtube", "720p", models.ContentVideo, nil)
	require.NoError(t, err)
	_, err = st.CreateDownload(user.ID, "https://www.pinterest.com/pin/1/", "pinterest", "Best", models.ContentImage, nil)
	require.NoError(t, err)

	u, err := svc.Usage(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "free", u.PlanID)
	assert.Equal(t, "Free", u.PlanName)
	assert.Equal(t, 2, u.VideosUsed)
	assert.Equal(t, billing.Quota{Count: 3}, u.VideosLeft)
	assert.Equal(t, 1, u.ImagesUsed)
	assert.Equal(t, billing.Quota{Count: 9}, u.ImagesLeft)
	assert.Equal(t, int64(1024*1024), u.DataUsedBytes)
	assert.Equal(t, billing.FreeDataCapBytes, u.DataCapBytes)
	assert.Equal(t, billing.FreeDataCapBytes-1024*1024, u.DataLeftBytes)
	assert.False(t, u.AdFree)

	t.Run("Pro snapshot has no data cap", func(t *testing.T) {
		expires := time.Now().AddDate(0, 1, 0)
		_, err := st.ActivateSubscription(user.ID, "pro", nil, &expires)
		require.NoError(t, err)

		u, err := svc.Usage(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, "pro", u.PlanID)
		assert.True(t, u.VideosLeft.Unlimited)
		assert.True(t, u.AdFree)
		assert.Zero(t, u.DataCapBytes)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		_, err := svc.Usage(ctx, nil)
		assert.ErrorIs(t, err, billing.ErrUnauthenticated)
	})
}

func TestSubscribe(t *testing.T) {
	svc, st, user := newService(t)

	t.Run("Unknown plan", func(t *testing.T) {
		_, _, err := svc.Subscribe(user, "platinum", "stripe")
		assert.ErrorIs(t, err, billing.ErrUnknownPlan)
	})

	t.Run("Free activates without payment", func(t *testing.T) {
		sub, payment, err := svc.Subscribe(user, "free", "")
		require.NoError(t, err)
		assert.Nil(t, payment)
		assert.Equal(t, "free", sub.PlanID)
		assert.Nil(t, sub.ExpiresAt)
		assert.True(t, sub.IsActive())
	})

	t.Run("Paid plan goes through mock checkout", func(t *testing.T) {
		sub, payment, err := svc.Subscribe(user, "basic", "paypal")
		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.True(t, strings.HasPrefix(payment.PaymentID, "paypal_"), "payment id %q", payment.PaymentID)
		assert.NotEmpty(t, payment.Confirmation)
		assert.Equal(t, 499, payment.AmountCents)

		require.NotNil(t, sub.ExpiresAt)
		oneMonth := time.Now().AddDate(0, 1, 0)
		assert.WithinDuration(t, oneMonth, *sub.ExpiresAt, time.Minute)
		assert.Equal(t, "basic", svc.EffectivePlan(user).ID)
	})

	t.Run("Legacy identifier stores the mapped plan", func(t *testing.T) {
		sub, _, err := svc.Subscribe(user, "premium_plus", "stripe")
		require.NoError(t, err)
		assert.Equal(t, "pro", sub.PlanID)

		stored, err := st.GetCurrentSubscription(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "pro", stored.PlanID)
	})
}

func TestCancelSubscription(t *testing.T) {
	svc, _, user := newService(t)

	t.Run("Nothing to cancel", func(t *testing.T) {
		assert.ErrorIs(t, svc.CancelSubscription(user), billing.ErrNoSubscription)
	})

	t.Run("Cancel drops entitlements to free", func(t *testing.T) {
		_, _, err := svc.Subscribe(user, "pro", "stripe")
		require.NoError(t, err)
		require.Equal(t, "pro", svc.EffectivePlan(user).ID)

		require.NoError(t, svc.CancelSubscription(user))
		assert.Equal(t, "free", svc.EffectivePlan(user).ID)
		assert.ErrorIs(t, svc.CancelSubscription(user), billing.ErrNoSubscription)
	})
}
