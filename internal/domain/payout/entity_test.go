//go:build unit

package payout_test

import (
	"testing"
	"time"

	"grocery-admin/internal/domain/payout"
	"grocery-admin/internal/pkg/errs"
	"grocery-admin/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

type testCase struct {
	name   string
	mutate func(*builder.PayoutBuilder)
	errIs  error
}

func TestNewRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewPayoutBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, payout.StatusPending, actual.Status())
		assert.Equal(t, payout.RequesterDeliveryBoy, actual.RequesterType())
		assert.Equal(t, "Ramesh Kumar", actual.RequesterName())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Nil(t, actual.ApprovedAt())
		assert.Nil(t, actual.CompletedAt())
		assert.Nil(t, actual.RejectedAt())
	})

	runCases(t, []testCase{
		{
			name:   "zero amount",
			mutate: func(b *builder.PayoutBuilder) { b.WithAmount("0") },
			errIs:  payout.ErrInvalidAmount,
		},
		{
			name:   "negative amount",
			mutate: func(b *builder.PayoutBuilder) { b.WithAmount("-10") },
			errIs:  payout.ErrInvalidAmount,
		},
		{
			name:   "amount equal to available",
			mutate: func(b *builder.PayoutBuilder) { b.WithAmount("10000.00") },
		},
		{
			name:   "amount above available",
			mutate: func(b *builder.PayoutBuilder) { b.WithAmount("10000.01") },
			errIs:  payout.ErrInsufficientBalance,
		},
		{
			name:   "unknown requester type",
			mutate: func(b *builder.PayoutBuilder) { b.WithRequester("customer", "Asha") },
			errIs:  payout.ErrInvalidRequesterType,
		},
		{
			name:   "blank requester name",
			mutate: func(b *builder.PayoutBuilder) { b.WithRequester("vendor", "  ") },
			errIs:  payout.ErrRequesterNameRequired,
		},
		{
			name:   "missing requester id",
			mutate: func(b *builder.PayoutBuilder) { b.RequesterID = uuid.Nil },
			errIs:  payout.ErrRequesterIDRequired,
		},
	})
}

func TestApprove(t *testing.T) {
	t.Run("pending and verified becomes approved", func(t *testing.T) {
		b := builder.NewPayoutBuilder()
		r, err := b.BuildStored()
		require.NoError(t, err)

		require.NoError(t, r.Approve(b.Now))

		assert.Equal(t, payout.StatusApproved, r.Status())
		require.NotNil(t, r.ApprovedAt())
		assert.Equal(t, b.Now, *r.ApprovedAt())
		assert.Equal(t, b.Now, r.UpdatedAt())
	})

	t.Run("unverified bank stays pending", func(t *testing.T) {
		b := builder.NewPayoutBuilder().AsUnverified()
		r, err := b.BuildStored()
		require.NoError(t, err)
		before := r.Snapshot()

		err = r.Approve(b.Now)

		require.ErrorIs(t, err, payout.ErrBankNotVerified)
		assert.True(t, errs.Is(err, payout.ErrActionUnavailable))
		assert.False(t, errs.Is(err, errs.ErrDomainValidation))
		assert.False(t, errs.Is(err, payout.ErrRejectionReasonRequired))
		assertUnchanged(t, before, r)
	})
}

func TestReject(t *testing.T) {
	t.Run("stores trimmed reason", func(t *testing.T) {
		b := builder.NewPayoutBuilder()
		r, err := b.BuildStored()
		require.NoError(t, err)

		require.NoError(t, r.Reject("  KYC documents expired ", b.Now))

		assert.Equal(t, payout.StatusRejected, r.Status())
		require.NotNil(t, r.RejectionReason())
		assert.Equal(t, "KYC documents expired", *r.RejectionReason())
		require.NotNil(t, r.RejectedAt())
		assert.Nil(t, r.CompletedAt())
	})

	for _, reason := range []string{"", "   "} {
		t.Run("blank reason keeps status "+quote(reason), func(t *testing.T) {
			b := builder.NewPayoutBuilder()
			r, err := b.BuildStored()
			require.NoError(t, err)
			before := r.Snapshot()

			err = r.Reject(reason, b.Now)

			require.ErrorIs(t, err, payout.ErrRejectionReasonRequired)
			assert.True(t, errs.Is(err, errs.ErrDomainValidation))
			assert.False(t, errs.Is(err, payout.ErrActionUnavailable))
			assertUnchanged(t, before, r)
		})
	}

	t.Run("not allowed after approval", func(t *testing.T) {
		b := builder.NewPayoutBuilder().WithStatus("approved")
		r, err := b.BuildStored()
		require.NoError(t, err)
		before := r.Snapshot()

		err = r.Reject("changed my mind", b.Now)

		assert.True(t, errs.Is(err, payout.ErrActionUnavailable))
		assert.False(t, errs.Is(err, payout.ErrRejectionReasonRequired))
		assertUnchanged(t, before, r)
	})
}

func TestTransitionTable(t *testing.T) {
	type step struct {
		action payout.Action
		input  payout.Input
	}
	approve := step{action: payout.ActionApprove}
	reject := step{action: payout.ActionReject, input: payout.Input{Reason: "duplicate request"}}
	process := step{action: payout.ActionMarkProcessing}
	transfer := step{action: payout.ActionInitiateTransfer, input: payout.Input{TransactionRef: "UTR-77881"}}
	complete := step{action: payout.ActionComplete}

	all := []step{approve, reject, process, transfer, complete}
	legal := map[payout.Status]map[payout.Action]payout.Status{
		payout.StatusPending: {
			payout.ActionApprove: payout.StatusApproved,
			payout.ActionReject:  payout.StatusRejected,
		},
		payout.StatusApproved: {
			payout.ActionMarkProcessing:   payout.StatusProcessing,
			payout.ActionInitiateTransfer: payout.StatusTransferred,
		},
		payout.StatusProcessing: {
			payout.ActionInitiateTransfer: payout.StatusTransferred,
		},
		payout.StatusTransferred: {
			payout.ActionComplete: payout.StatusCompleted,
		},
		payout.StatusCompleted: {},
		payout.StatusRejected:  {},
	}

	for _, from := range payout.Statuses {
		for _, s := range all {
			t.Run(from.String()+"/"+s.action.String(), func(t *testing.T) {
				b := builder.NewPayoutBuilder().WithStatus(from.String())
				r, err := b.BuildStored()
				require.NoError(t, err)
				before := r.Snapshot()

				err = r.Apply(s.action, s.input, b.Now)

				want, ok := legal[from][s.action]
				if ok {
					require.NoError(t, err)
					assert.Equal(t, want, r.Status())
					next, found := payout.Next(from, s.action)
					assert.True(t, found)
					assert.Equal(t, want, next)
					return
				}
				assert.True(t, errs.Is(err, payout.ErrActionUnavailable), "got %v", err)
				assertUnchanged(t, before, r)
				_, found := payout.Next(from, s.action)
				assert.False(t, found)
			})
		}
	}
}

func TestInitiateTransfer(t *testing.T) {
	t.Run("requires transaction reference", func(t *testing.T) {
		b := builder.NewPayoutBuilder().WithStatus("processing")
		r, err := b.BuildStored()
		require.NoError(t, err)
		before := r.Snapshot()

		err = r.InitiateTransfer(" ", b.Now)

		require.ErrorIs(t, err, payout.ErrTransactionRefRequired)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
		assert.False(t, errs.Is(err, payout.ErrActionUnavailable))
		assertUnchanged(t, before, r)
	})

	t.Run("skips processing", func(t *testing.T) {
		b := builder.NewPayoutBuilder().WithStatus("approved")
		r, err := b.BuildStored()
		require.NoError(t, err)

		require.NoError(t, r.InitiateTransfer("UTR-1", b.Now))

		assert.Equal(t, payout.StatusTransferred, r.Status())
		assert.Equal(t, "UTR-1", *r.TransactionRef())
		assert.Equal(t, b.Now, *r.TransferredAt())
	})
}

func TestComplete(t *testing.T) {
	t.Run("transferred becomes completed and repeat is a no-op", func(t *testing.T) {
		b := builder.NewPayoutBuilder().WithStatus("transferred")
		r, err := b.BuildStored()
		require.NoError(t, err)

		require.NoError(t, r.Complete(b.Now))
		assert.Equal(t, payout.StatusCompleted, r.Status())
		require.NotNil(t, r.CompletedAt())
		assert.Equal(t, b.Now, *r.CompletedAt())
		after := r.Snapshot()

		err = r.Complete(b.Now.Add(time.Hour))
		assert.True(t, errs.Is(err, payout.ErrActionUnavailable))
		assertUnchanged(t, after, r)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := builder.NewPayoutBuilder()
		r, err := b.BuildStored()
		require.NoError(t, err)

		err = r.Complete(b.Now)

		assert.True(t, errs.Is(err, payout.ErrActionUnavailable))
		for _, input := range []error{payout.ErrBankNotVerified, payout.ErrRejectionReasonRequired, payout.ErrTransactionRefRequired, errs.ErrDomainValidation} {
			assert.False(t, errs.Is(err, input), "wrong status matched %v", input)
		}
		assert.Equal(t, payout.StatusPending, r.Status())
	})
}

func TestFullLifecycle(t *testing.T) {
	b := builder.NewPayoutBuilder()
	r, err := b.BuildDomain()
	require.NoError(t, err)

	t0 := b.Now
	require.NoError(t, r.Approve(t0.Add(time.Minute)))
	require.NoError(t, r.MarkProcessing(t0.Add(2*time.Minute)))
	require.NoError(t, r.InitiateTransfer("NEFT-4431", t0.Add(3*time.Minute)))
	require.NoError(t, r.Complete(t0.Add(4*time.Minute)))

	assert.Equal(t, payout.StatusCompleted, r.Status())
	assert.True(t, r.Status().IsTerminal())
	assert.True(t, r.CreatedAt().Before(*r.ApprovedAt()))
	assert.True(t, r.ApprovedAt().Before(*r.TransferredAt()))
	assert.True(t, r.TransferredAt().Before(*r.CompletedAt()))
	assert.Nil(t, r.RejectedAt())
	assert.Empty(t, r.AvailableActions())
}

func TestAvailableActions(t *testing.T) {
	tests := []struct {
		status   string
		verified bool
		want     []payout.Action
	}{
		{status: "pending", verified: true, want: []payout.Action{payout.ActionApprove, payout.ActionReject}},
		{status: "pending", verified: false, want: []payout.Action{payout.ActionReject}},
		{status: "approved", verified: true, want: []payout.Action{payout.ActionMarkProcessing, payout.ActionInitiateTransfer}},
		{status: "processing", verified: true, want: []payout.Action{payout.ActionInitiateTransfer}},
		{status: "transferred", verified: true, want: []payout.Action{payout.ActionComplete}},
		{status: "completed", verified: true, want: []payout.Action{}},
		{status: "rejected", verified: false, want: []payout.Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			b := builder.NewPayoutBuilder().WithStatus(tt.status)
			b.BankVerified = tt.verified
			r, err := b.BuildStored()
			require.NoError(t, err)

			assert.Equal(t, tt.want, r.AvailableActions())
			assert.Equal(t, tt.want, payout.ActionsFor(payout.Status(tt.status), tt.verified))
			for _, a := range tt.want {
				assert.True(t, r.Can(a))
			}
		})
	}
}

func TestReconstructRejectsUnknownStatus(t *testing.T) {
	_, err := builder.NewPayoutBuilder().WithStatus("paid").BuildStored()
	require.ErrorIs(t, err, payout.ErrInvalidStatus)
}

func TestNewAction(t *testing.T) {
	a, err := payout.NewAction("initiate_transfer")
	require.NoError(t, err)
	assert.Equal(t, payout.ActionInitiateTransfer, a)

	_, err = payout.NewAction("refund")
	require.ErrorIs(t, err, payout.ErrInvalidAction)
}

func assertUnchanged(t *testing.T, before payout.Snapshot, r *payout.Request) {
	t.Helper()
	if diff := cmp.Diff(before, r.Snapshot(), decimalEqual); diff != "" {
		t.Errorf("request changed (-want +got):\n%s", diff)
	}
}

func quote(s string) string {
	return "\"" + s + "\""
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPayoutBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
			} else {
				require.Nil(t, actual)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
