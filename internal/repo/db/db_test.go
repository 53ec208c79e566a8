package db

import (
	"context"
	"database/sql"
	"errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yur1-dev/koka-backend/internal/model"
	"github.com/yur1-dev/koka-backend/internal/repo"
	"gopkg.in/DATA-DOG/go-sqlmock.v1"
	"log"
	"regexp"
	"testing"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(
		func() {
			if err := db.Close(); err != nil {
				log.Println(err)
			}
		},
	)
	return &Repository{conn: db}, mock
}

func TestRepository_GetUserByUsername(t *testing.T) {
	rr, mock := newMockRepo(t)

	name := "username"
	testErr := errors.New("test-err")

	tests := []struct {
		name         string
		mockExpect   func()
		expectedResp func(*testing.T, *model.User, error)
	}{
		{
			name: "Success",
			mockExpect: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getUser)).
					WithArgs(name).
					WillReturnRows(
						sqlmock.NewRows(
							[]string{
								"id",
								"username",
								"password",
								"account_number",
								"points",
								"is_admin",
								"is_founder",
								"has_claimed_starter",
								"wallet_address",
							},
						).AddRow(
							uuid.NewString(),
							"username",
							"password",
							42,
							0,
							false,
							true,
							false,
							nil,
						),
					)
			},
			expectedResp: func(t *testing.T, res *model.User, err error) {
				require.NoError(t, err)
				assert.Equal(t, name, res.Username)
				assert.Equal(t, int64(42), res.AccountNumber)
				assert.True(t, res.IsFounder)
				assert.Nil(t, res.WalletAddress)
			},
		},
		{
			name: "ErrNoRows",
			mockExpect: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getUser)).
					WithArgs(name).
					WillReturnError(sql.ErrNoRows)
			},
			expectedResp: func(t *testing.T, res *model.User, err error) {
				assert.Nil(t, res)
				assert.Equal(t, repo.ErrNotFound, err)
			},
		},
		{
			name: "ErrInternal",
			mockExpect: func() {
				mock.ExpectQuery(regexp.QuoteMeta(getUser)).
					WithArgs(name).
					WillReturnError(testErr)
			},
			expectedResp: func(t *testing.T, res *model.User, err error) {
				assert.Nil(t, res)
				assert.Equal(t, testErr, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.mockExpect()
				res, err := rr.GetUserByUsername(context.Background(), name)
				tt.expectedResp(t, res, err)
				assert.NoError(t, mock.ExpectationsWereMet())
			},
		)
	}
}

func TestRepository_ClaimItem(t *testing.T) {
	rr, mock := newMockRepo(t)

	uid := uuid.New()
	cid := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(claimItem)).
				WithArgs(uid.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(setStarterClaimed)).
				WithArgs(uid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.ClaimItem(context.Background(), uid, cid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"AlreadyClaimed", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(claimItem)).
				WithArgs(uid.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrAlreadyClaimed, rr.ClaimItem(context.Background(), uid, cid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_SendOffchain(t *testing.T) {
	rr, mock := newMockRepo(t)

	uid := uuid.New()
	toID := uuid.New()
	cid := uuid.New()

	t.Run(
		"Success -- decrement", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(getUserIDByUsername)).
				WithArgs("bob").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(toID.String()))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
			mock.ExpectExec(regexp.QuoteMeta(decInventory)).
				WithArgs(2, uid.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(upsertInventory)).
				WithArgs(toID.String(), cid.String(), 2, model.ViaOffchainSend).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.SendOffchain(context.Background(), uid, cid, "bob", 2))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"Success -- row deleted at zero", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(getUserIDByUsername)).
				WithArgs("bob").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(toID.String()))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))
			mock.ExpectExec(regexp.QuoteMeta(deleteInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(upsertInventory)).
				WithArgs(toID.String(), cid.String(), 2, model.ViaOffchainSend).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.SendOffchain(context.Background(), uid, cid, "bob", 2))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"InsufficientQuantity", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(getUserIDByUsername)).
				WithArgs("bob").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(toID.String()))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(1))
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrInsufficientQuantity,
				rr.SendOffchain(context.Background(), uid, cid, "bob", 2),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"RecipientNotFound", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(getUserIDByUsername)).
				WithArgs("ghost").
				WillReturnError(sql.ErrNoRows)
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrNotFound,
				rr.SendOffchain(context.Background(), uid, cid, "ghost", 1),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"SelfTransfer", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(getUserIDByUsername)).
				WithArgs("me").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uid.String()))
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrSelfTransfer,
				rr.SendOffchain(context.Background(), uid, cid, "me", 1),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_CreateListing(t *testing.T) {
	rr, mock := newMockRepo(t)

	uid := uuid.New()
	cid := uuid.New()
	lid := uuid.New()

	t.Run(
		"Success -- fresh listing", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))
			mock.ExpectQuery(regexp.QuoteMeta(lockActiveListingByPair)).
				WithArgs(uid.String(), cid.String()).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectQuery(regexp.QuoteMeta(lockLatestListingByPair)).
				WithArgs(uid.String(), cid.String()).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectExec(regexp.QuoteMeta(createListing)).
				WithArgs(uid.String(), cid.String(), 10, 3).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.CreateListing(context.Background(), uid, cid, 10, 3))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"Success -- reactivates old row", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))
			mock.ExpectQuery(regexp.QuoteMeta(lockActiveListingByPair)).
				WithArgs(uid.String(), cid.String()).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectQuery(regexp.QuoteMeta(lockLatestListingByPair)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(lid.String()))
			mock.ExpectExec(regexp.QuoteMeta(reactivateListing)).
				WithArgs(10, 3, lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.CreateListing(context.Background(), uid, cid, 10, 3))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"DuplicateActiveListing", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(5))
			mock.ExpectQuery(regexp.QuoteMeta(lockActiveListingByPair)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(lid.String()))
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrDuplicateListing,
				rr.CreateListing(context.Background(), uid, cid, 10, 3),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"InsufficientQuantity", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(uid.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(2))
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrInsufficientQuantity,
				rr.CreateListing(context.Background(), uid, cid, 10, 3),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_BuyListing(t *testing.T) {
	rr, mock := newMockRepo(t)

	buyer := uuid.New()
	seller := uuid.New()
	cid := uuid.New()
	lid := uuid.New()

	listingRows := func(quantity int, status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"user_id", "collectible_id", "quantity", "status"}).
			AddRow(seller.String(), cid.String(), quantity, status)
	}

	t.Run(
		"Success -- listing stays active", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(2, model.ListingActive))
			mock.ExpectExec(regexp.QuoteMeta(decListing)).
				WithArgs(lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(seller.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(3))
			mock.ExpectExec(regexp.QuoteMeta(decInventory)).
				WithArgs(1, seller.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(upsertInventory)).
				WithArgs(buyer.String(), cid.String(), 1, model.ViaMarketplaceBuy).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.BuyListing(context.Background(), buyer, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"Success -- last unit marks sold, seller row deleted", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(1, model.ListingActive))
			mock.ExpectExec(regexp.QuoteMeta(decListing)).
				WithArgs(lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(markListingSold)).
				WithArgs(lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(seller.String(), cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"quantity"}).AddRow(1))
			mock.ExpectExec(regexp.QuoteMeta(deleteInventory)).
				WithArgs(seller.String(), cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(upsertInventory)).
				WithArgs(buyer.String(), cid.String(), 1, model.ViaMarketplaceBuy).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.BuyListing(context.Background(), buyer, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"SellerCannotDeliver", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(2, model.ListingActive))
			mock.ExpectExec(regexp.QuoteMeta(decListing)).
				WithArgs(lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectQuery(regexp.QuoteMeta(lockInventory)).
				WithArgs(seller.String(), cid.String()).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrInsufficientQuantity,
				rr.BuyListing(context.Background(), buyer, lid),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotActive", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(1, model.ListingCancelled))
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrListingNotActive, rr.BuyListing(context.Background(), buyer, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"SelfPurchase", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(1, model.ListingActive))
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrSelfPurchase, rr.BuyListing(context.Background(), seller, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrNotFound, rr.BuyListing(context.Background(), buyer, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_CancelListing(t *testing.T) {
	rr, mock := newMockRepo(t)

	uid := uuid.New()
	other := uuid.New()
	cid := uuid.New()
	lid := uuid.New()

	listingRows := func(owner uuid.UUID, status string) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"user_id", "collectible_id", "quantity", "status"}).
			AddRow(owner.String(), cid.String(), 1, status)
	}

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(uid, model.ListingActive))
			mock.ExpectExec(regexp.QuoteMeta(markListingCancelled)).
				WithArgs(lid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.CancelListing(context.Background(), uid, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotOwner", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(other, model.ListingActive))
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrNotOwner, rr.CancelListing(context.Background(), uid, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotActive", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockListing)).
				WithArgs(lid.String()).
				WillReturnRows(listingRows(uid, model.ListingSold))
			mock.ExpectRollback()

			assert.Equal(t, repo.ErrListingNotActive, rr.CancelListing(context.Background(), uid, lid))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_GrantCollectible(t *testing.T) {
	rr, mock := newMockRepo(t)

	uid := uuid.New()
	cid := uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockCollectible)).
				WithArgs(cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"current_supply", "max_supply"}).AddRow(3, 10))
			mock.ExpectExec(regexp.QuoteMeta(upsertInventory)).
				WithArgs(uid.String(), cid.String(), 1, model.ViaStarterPack).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(incSupply)).
				WithArgs(cid.String()).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			assert.NoError(t, rr.GrantCollectible(context.Background(), uid, cid, model.ViaStarterPack))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"SupplyExhausted", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(lockCollectible)).
				WithArgs(cid.String()).
				WillReturnRows(sqlmock.NewRows([]string{"current_supply", "max_supply"}).AddRow(10, 10))
			mock.ExpectRollback()

			assert.Equal(
				t,
				repo.ErrSupplyExhausted,
				rr.GrantCollectible(context.Background(), uid, cid, model.ViaStarterPack),
			)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}
