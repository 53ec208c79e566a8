package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	conf "github.com/yur1-dev/koka-backend/internal/config"
	"github.com/yur1-dev/koka-backend/internal/dto"
	"github.com/yur1-dev/koka-backend/internal/model"
	"github.com/yur1-dev/koka-backend/internal/repo"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"path/filepath"
	"strings"
)

type Repository struct {
	conn *sql.DB
}

func New(conf *conf.DBConfig) *Repository {
	conn, err := sql.Open(
		"postgres", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.User,
			conf.Password,
			conf.Host,
			conf.Port,
			conf.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("Failed to connect to the database", zap.Error(err))
	}

	if err = conn.Ping(); err != nil {
		zap.L().Fatal("Failed to ping the database", zap.Error(err))
	}

	if err = applyMigrations(conn, conf); err != nil {
		zap.L().Fatal("Failed to apply migrations", zap.Error(err))
	}

	return &Repository{conn: conn}
}

func (r *Repository) Close() error {
	return r.conn.Close()
}

func applyMigrations(db *sql.DB, conf *conf.DBConfig) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	root, err := findRootDir()
	if err != nil {
		return err
	}
	path := filepath.ToSlash(filepath.Join(root, "internal/repo/db/migration"))

	m, err := migrate.NewWithDatabaseInstance("file://"+path, conf.Database, driver)
	if err != nil {
		return err
	}

	if err = m.Up(); err != nil && errors.Is(err, migrate.ErrNoChange) {
		zap.L().Info("No migrations to apply")
		return nil
	} else if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	zap.L().Info("Applied migrations")
	return nil
}

// rollback is deferred by every transactional method. After a successful
// commit it is a no-op (sql.ErrTxDone).
func rollback(tx *sql.Tx, op string) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		zap.L().Error(
			"Error while transaction rollback",
			zap.String("op", op), zap.Error(err),
		)
	}
}

func (r *Repository) GetUserByUsername(ctx context.Context, name string) (*model.User, error) {
	const op = "koka.GetUserByUsername.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res := &model.User{}
	err := r.conn.QueryRow(getUser, name).Scan(
		&res.ID,
		&res.Username,
		&res.Password,
		&res.AccountNumber,
		&res.Points,
		&res.IsAdmin,
		&res.IsFounder,
		&res.HasClaimedStarter,
		&res.WalletAddress,
	)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return nil, repo.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateUser(ctx context.Context, username, pswd string, isFounder bool) (uuid.UUID, error) {
	const op = "koka.CreateUser.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	err := r.conn.QueryRow(userCreate, username, pswd, isFounder).Scan(&id)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return uuid.Nil, repo.ErrAlreadyExists
		}
		return uuid.Nil, err
	}

	return id, nil
}

func (r *Repository) SetWallet(ctx context.Context, uid uuid.UUID, addr string) error {
	const op = "koka.SetWallet.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	res, err := r.conn.Exec(setWallet, addr, uid)
	if err != nil {
		if strings.Contains(err.Error(), "unique constraint") {
			return repo.ErrAlreadyExists
		}
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *Repository) GetInventory(ctx context.Context, uid uuid.UUID) (*dto.InventoryResponse, error) {
	const op = "koka.GetInventory.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.Query(getInventory, uid)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Error("Error while closing rows", zap.Error(err))
		}
	}(rows)

	items := make([]dto.InventoryItem, 0)
	for rows.Next() {
		i := dto.InventoryItem{}
		if err = rows.Scan(&i.CollectibleID, &i.Name, &i.Rarity, &i.Quantity, &i.IsClaimed, &i.ReceivedVia); err != nil {
			return nil, err
		}
		items = append(items, i)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &dto.InventoryResponse{Items: items}, nil
}

// ClaimItem marks an unclaimed inventory row claimed and flags the user's
// starter claim in the same transaction.
func (r *Repository) ClaimItem(ctx context.Context, uid, collectibleID uuid.UUID) error {
	const op = "koka.ClaimItem.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	res, err := tx.Exec(claimItem, uid, collectibleID)
	if err != nil {
		return err
	}

	aff, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if aff == 0 {
		return repo.ErrAlreadyClaimed
	}

	if _, err = tx.Exec(setStarterClaimed, uid); err != nil {
		return err
	}

	return tx.Commit()
}

// SendOffchain moves amount of a collectible from uid to the named recipient.
// The sender row is locked before the quantity check so that concurrent sends
// serialize; a row that reaches zero is deleted in the same transaction.
func (r *Repository) SendOffchain(ctx context.Context, uid, collectibleID uuid.UUID, toUsername string, amount int) error {
	const op = "koka.SendOffchain.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	var toID uuid.UUID
	err = tx.QueryRow(getUserIDByUsername, toUsername).Scan(&toID)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if toID == uid {
		return repo.ErrSelfTransfer
	}

	var quantity int
	err = tx.QueryRow(lockInventory, uid, collectibleID).Scan(&quantity)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if quantity < amount {
		return repo.ErrInsufficientQuantity
	}

	if quantity == amount {
		if _, err = tx.Exec(deleteInventory, uid, collectibleID); err != nil {
			return err
		}
	} else {
		if _, err = tx.Exec(decInventory, amount, uid, collectibleID); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(upsertInventory, toID, collectibleID, amount, model.ViaOffchainSend); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetMarketplace(ctx context.Context, page, size int) (*dto.MarketplaceResponse, error) {
	const op = "koka.GetMarketplace.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.Query(getMarketplace, size, page*size)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Error("Error while closing rows", zap.Error(err))
		}
	}(rows)

	listings := make([]dto.Listing, 0, size)
	for rows.Next() {
		l := dto.Listing{}
		if err = rows.Scan(&l.ID, &l.Seller, &l.CollectibleID, &l.Name, &l.Rarity, &l.Price, &l.Quantity); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &dto.MarketplaceResponse{Listings: listings}, nil
}

// CreateListing opens an active listing for the pair. Listing reserves
// nothing: the seller keeps the items until a sale completes, the buy path
// re-verifies delivery. A previous sold/cancelled row for the pair is reused.
func (r *Repository) CreateListing(ctx context.Context, uid, collectibleID uuid.UUID, price, quantity int) error {
	const op = "koka.CreateListing.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	var have int
	err = tx.QueryRow(lockInventory, uid, collectibleID).Scan(&have)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if have < quantity {
		return repo.ErrInsufficientQuantity
	}

	var existing uuid.UUID
	err = tx.QueryRow(lockActiveListingByPair, uid, collectibleID).Scan(&existing)
	if err == nil {
		return repo.ErrDuplicateListing
	} else if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	err = tx.QueryRow(lockLatestListingByPair, uid, collectibleID).Scan(&existing)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		if _, err = tx.Exec(createListing, uid, collectibleID, price, quantity); err != nil {
			return err
		}
		return tx.Commit()
	} else if err != nil {
		return err
	}

	if _, err = tx.Exec(reactivateListing, price, quantity, existing); err != nil {
		return err
	}

	return tx.Commit()
}

// BuyListing transfers one unit from the seller to the buyer. The listing and
// the seller's inventory row are both locked; if the seller no longer holds
// the item the whole transaction aborts.
func (r *Repository) BuyListing(ctx context.Context, uid, listingID uuid.UUID) error {
	const op = "koka.BuyListing.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	var sellerID, collectibleID uuid.UUID
	var quantity int
	var status string
	err = tx.QueryRow(lockListing, listingID).Scan(&sellerID, &collectibleID, &quantity, &status)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if status != model.ListingActive || quantity < 1 {
		return repo.ErrListingNotActive
	}

	if sellerID == uid {
		return repo.ErrSelfPurchase
	}

	if _, err = tx.Exec(decListing, listingID); err != nil {
		return err
	}

	if quantity == 1 {
		if _, err = tx.Exec(markListingSold, listingID); err != nil {
			return err
		}
	}

	var have int
	err = tx.QueryRow(lockInventory, sellerID, collectibleID).Scan(&have)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrInsufficientQuantity
	} else if err != nil {
		return err
	}

	if have < 1 {
		return repo.ErrInsufficientQuantity
	}

	if have == 1 {
		if _, err = tx.Exec(deleteInventory, sellerID, collectibleID); err != nil {
			return err
		}
	} else {
		if _, err = tx.Exec(decInventory, 1, sellerID, collectibleID); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(upsertInventory, uid, collectibleID, 1, model.ViaMarketplaceBuy); err != nil {
		return err
	}

	return tx.Commit()
}

// CancelListing is an owner-only active→cancelled transition. No inventory
// change: nothing was held back at list time.
func (r *Repository) CancelListing(ctx context.Context, uid, listingID uuid.UUID) error {
	const op = "koka.CancelListing.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	var sellerID, collectibleID uuid.UUID
	var quantity int
	var status string
	err = tx.QueryRow(lockListing, listingID).Scan(&sellerID, &collectibleID, &quantity, &status)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if sellerID != uid {
		return repo.ErrNotOwner
	}

	if status != model.ListingActive {
		return repo.ErrListingNotActive
	}

	if _, err = tx.Exec(markListingCancelled, listingID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) ListGrantable(ctx context.Context) ([]model.Collectible, error) {
	const op = "koka.ListGrantable.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	rows, err := r.conn.Query(listGrantable)
	if err != nil {
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			zap.L().Error("Error while closing rows", zap.Error(err))
		}
	}(rows)

	res := make([]model.Collectible, 0)
	for rows.Next() {
		c := model.Collectible{}
		if err = rows.Scan(&c.ID, &c.Name, &c.Rarity, &c.MaxSupply, &c.CurrentSupply); err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return res, nil
}

// GrantCollectible creates (or tops up) an inventory row and increments the
// collectible's supply counter. The supply cap is re-checked under a row lock
// so concurrent grants cannot push current_supply past max_supply.
func (r *Repository) GrantCollectible(ctx context.Context, uid, collectibleID uuid.UUID, via string) error {
	const op = "koka.GrantCollectible.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	tx, err := r.conn.Begin()
	if err != nil {
		return err
	}
	defer rollback(tx, op)

	var current, max int
	err = tx.QueryRow(lockCollectible, collectibleID).Scan(&current, &max)
	if err != nil && errors.Is(err, sql.ErrNoRows) {
		return repo.ErrNotFound
	} else if err != nil {
		return err
	}

	if current >= max {
		return repo.ErrSupplyExhausted
	}

	if _, err = tx.Exec(upsertInventory, uid, collectibleID, 1, via); err != nil {
		return err
	}

	if _, err = tx.Exec(incSupply, collectibleID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) MintCollectible(ctx context.Context, name, rarity string) (uuid.UUID, error) {
	const op = "koka.MintCollectible.repo"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	var id uuid.UUID
	if err := r.conn.QueryRow(mintCollectible, name, rarity).Scan(&id); err != nil {
		return uuid.Nil, err
	}

	return id, nil
}
