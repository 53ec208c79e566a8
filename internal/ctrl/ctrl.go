package ctrl

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/yur1-dev/koka-backend/internal/auth"
	"github.com/yur1-dev/koka-backend/internal/config"
	"github.com/yur1-dev/koka-backend/internal/dto"
	"github.com/yur1-dev/koka-backend/internal/grant"
	"github.com/yur1-dev/koka-backend/internal/model"
	"github.com/yur1-dev/koka-backend/internal/repo"
	"go.uber.org/zap"
	"io"
	"math/rand"
	"time"
)

const cacheTTL = time.Minute

type AppRepo interface {
	GetUserByUsername(ctx context.Context, name string) (*model.User, error)
	CreateUser(ctx context.Context, username, pswd string, isFounder bool) (uuid.UUID, error)
	SetWallet(ctx context.Context, uid uuid.UUID, addr string) error
	GetInventory(ctx context.Context, uid uuid.UUID) (*dto.InventoryResponse, error)
	ClaimItem(ctx context.Context, uid, collectibleID uuid.UUID) error
	SendOffchain(ctx context.Context, uid, collectibleID uuid.UUID, toUsername string, amount int) error
	GetMarketplace(ctx context.Context, page, size int) (*dto.MarketplaceResponse, error)
	CreateListing(ctx context.Context, uid, collectibleID uuid.UUID, price, quantity int) error
	BuyListing(ctx context.Context, uid, listingID uuid.UUID) error
	CancelListing(ctx context.Context, uid, listingID uuid.UUID) error
	ListGrantable(ctx context.Context) ([]model.Collectible, error)
	GrantCollectible(ctx context.Context, uid, collectibleID uuid.UUID, via string) error
	MintCollectible(ctx context.Context, name, rarity string) (uuid.UUID, error)
}

type AppCtrl interface {
	AuthUser(ctx context.Context, req *dto.AuthRequest) (*dto.TokenResponse, error)
	GetInventory(ctx context.Context, uid uuid.UUID) (*dto.InventoryResponse, error)
	ClaimItem(ctx context.Context, uid, collectibleID uuid.UUID) error
	SendOffchain(ctx context.Context, uid, collectibleID uuid.UUID, toUsername string, amount int) error
	GetMarketplace(ctx context.Context, page, size int) (*dto.MarketplaceResponse, error)
	CreateListing(ctx context.Context, uid, collectibleID uuid.UUID, price, quantity int) error
	BuyListing(ctx context.Context, uid, listingID uuid.UUID) error
	CancelListing(ctx context.Context, uid, listingID uuid.UUID) error
	SetWallet(ctx context.Context, uid uuid.UUID, addr string) error
	Airdrop(ctx context.Context, username string, count int) error
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	repo  AppRepo
	cache CacheService
	auth  auth.AuthService
	grant config.GrantConfig
}

func New(auth auth.AuthService, repo AppRepo, cache CacheService, grant config.GrantConfig) *Controller {
	return &Controller{
		auth:  auth,
		repo:  repo,
		cache: cache,
		grant: grant,
	}
}

// mapRepoErr translates repository sentinels into controller sentinels so
// handlers never import the repo package.
func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repo.ErrAlreadyExists):
		return ErrAlreadyExists
	case errors.Is(err, repo.ErrAlreadyClaimed):
		return ErrAlreadyClaimed
	case errors.Is(err, repo.ErrInsufficientQuantity):
		return ErrInsufficientQuantity
	case errors.Is(err, repo.ErrDuplicateListing):
		return ErrDuplicateListing
	case errors.Is(err, repo.ErrListingNotActive):
		return ErrListingNotActive
	case errors.Is(err, repo.ErrNotOwner):
		return ErrNotOwner
	case errors.Is(err, repo.ErrSelfTransfer):
		return ErrSelfTransfer
	case errors.Is(err, repo.ErrSelfPurchase):
		return ErrSelfPurchase
	case errors.Is(err, repo.ErrSupplyExhausted):
		return ErrSupplyExhausted
	}
	return err
}

func (c *Controller) isFounder(username string) bool {
	for _, v := range c.grant.Founders {
		if v == username {
			return true
		}
	}
	return false
}

func (c *Controller) AuthUser(ctx context.Context, req *dto.AuthRequest) (*dto.TokenResponse, error) {
	const op = "koka.AuthUser.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	res, err := c.repo.GetUserByUsername(ctx, req.Username)
	if err != nil && errors.Is(err, repo.ErrNotFound) {
		zap.L().Info(
			"user not found, creating...",
			zap.String("username", req.Username),
		)

		hash, err := c.auth.HashPassword(req.Password)
		if err != nil {
			return nil, err
		}

		founder := c.isFounder(req.Username)
		uid, err := c.repo.CreateUser(ctx, req.Username, hash, founder)
		if err != nil && errors.Is(err, repo.ErrAlreadyExists) {
			return nil, ErrAlreadyExists
		} else if err != nil {
			return nil, err
		}

		if err = c.grantStarter(ctx, uid, founder); err != nil {
			zap.L().Warn(
				"failed to grant starter pack",
				zap.String("uid", uid.String()), zap.Error(err),
			)
		}

		token, err := c.auth.NewToken(uid, false)
		if err != nil {
			return nil, err
		}
		return &dto.TokenResponse{Token: token}, nil
	} else if err != nil {
		return nil, err
	}

	if err = c.auth.ComparePasswords([]byte(res.Password), []byte(req.Password)); err != nil {
		return nil, err
	}

	token, err := c.auth.NewToken(res.ID, res.IsAdmin)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token}, nil
}

// grantStarter hands a new account its starter pack: weighted random picks
// from the grantable pool, retried on supply exhaustion, with a one-off mint
// as the last resort.
func (c *Controller) grantStarter(ctx context.Context, uid uuid.UUID, founder bool) error {
	weights := grant.StarterWeights
	if founder {
		weights = grant.FounderWeights
	}
	return c.grantLoop(ctx, uid, weights, c.grant.StarterPackSize, model.ViaStarterPack)
}

func (c *Controller) grantLoop(ctx context.Context, uid uuid.UUID, weights map[string]int, count int, via string) error {
	pool, err := c.repo.ListGrantable(ctx)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < count; i++ {
		if err := c.grantOne(ctx, uid, pool, weights, rng, via); err != nil {
			return err
		}
	}

	c.cache.Delete(ctx, "inventory:"+uid.String())
	return nil
}

func (c *Controller) grantOne(ctx context.Context, uid uuid.UUID, pool []model.Collectible, weights map[string]int, rng *rand.Rand, via string) error {
	for attempt := 0; attempt < c.grant.MaxRetries; attempt++ {
		pick, err := grant.Select(pool, weights, rng)
		if err != nil && errors.Is(err, grant.ErrEmptyPool) {
			break
		} else if err != nil {
			return err
		}

		err = c.repo.GrantCollectible(ctx, uid, pick.ID, via)
		if err == nil {
			return nil
		}
		if errors.Is(err, repo.ErrSupplyExhausted) {
			pool = grant.Without(pool, pick.ID)
			continue
		}
		return mapRepoErr(err)
	}

	// Every pick ran out of supply: mint a fresh one-off collectible.
	id, err := c.repo.MintCollectible(
		ctx,
		fmt.Sprintf("one-off-%s", uuid.NewString()[:8]),
		model.RarityCommon,
	)
	if err != nil {
		return err
	}

	return mapRepoErr(c.repo.GrantCollectible(ctx, uid, id, via))
}

func (c *Controller) GetInventory(ctx context.Context, uid uuid.UUID) (*dto.InventoryResponse, error) {
	const op = "koka.GetInventory.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	cached := &dto.InventoryResponse{}
	key := "inventory:" + uid.String()
	if err := c.cache.GetToStruct(ctx, key, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetInventory(ctx, uid)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	c.cache.Set(ctx, cacheTTL, key, res)
	return res, nil
}

func (c *Controller) ClaimItem(ctx context.Context, uid, collectibleID uuid.UUID) error {
	const op = "koka.ClaimItem.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	if err := c.repo.ClaimItem(ctx, uid, collectibleID); err != nil {
		return mapRepoErr(err)
	}

	c.cache.Delete(ctx, "inventory:"+uid.String())
	return nil
}

func (c *Controller) SendOffchain(ctx context.Context, uid, collectibleID uuid.UUID, toUsername string, amount int) error {
	const op = "koka.SendOffchain.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	if err := c.repo.SendOffchain(ctx, uid, collectibleID, toUsername, amount); err != nil {
		return mapRepoErr(err)
	}

	c.cache.InvalidateKeysByPattern(ctx, "inventory:*")
	return nil
}

func (c *Controller) GetMarketplace(ctx context.Context, page, size int) (*dto.MarketplaceResponse, error) {
	const op = "koka.GetMarketplace.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	cached := &dto.MarketplaceResponse{}
	key := fmt.Sprintf("marketplace:%d:%d", page, size)
	if err := c.cache.GetToStruct(ctx, key, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetMarketplace(ctx, page, size)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	c.cache.Set(ctx, cacheTTL, key, res)
	return res, nil
}

func (c *Controller) CreateListing(ctx context.Context, uid, collectibleID uuid.UUID, price, quantity int) error {
	const op = "koka.CreateListing.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	if err := c.repo.CreateListing(ctx, uid, collectibleID, price, quantity); err != nil {
		return mapRepoErr(err)
	}

	c.cache.InvalidateKeysByPattern(ctx, "marketplace:*")
	return nil
}

func (c *Controller) BuyListing(ctx context.Context, uid, listingID uuid.UUID) error {
	const op = "koka.BuyListing.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	if err := c.repo.BuyListing(ctx, uid, listingID); err != nil {
		return mapRepoErr(err)
	}

	c.cache.InvalidateKeysByPattern(ctx, "marketplace:*")
	c.cache.InvalidateKeysByPattern(ctx, "inventory:*")
	return nil
}

func (c *Controller) CancelListing(ctx context.Context, uid, listingID uuid.UUID) error {
	const op = "koka.CancelListing.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	if err := c.repo.CancelListing(ctx, uid, listingID); err != nil {
		return mapRepoErr(err)
	}

	c.cache.InvalidateKeysByPattern(ctx, "marketplace:*")
	return nil
}

func (c *Controller) SetWallet(ctx context.Context, uid uuid.UUID, addr string) error {
	const op = "koka.SetWallet.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	return mapRepoErr(c.repo.SetWallet(ctx, uid, addr))
}

func (c *Controller) Airdrop(ctx context.Context, username string, count int) error {
	const op = "koka.Airdrop.ctrl"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	ctx = opentracing.ContextWithSpan(ctx, span)
	defer span.Finish()

	user, err := c.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return mapRepoErr(err)
	}

	weights := grant.StarterWeights
	if user.IsFounder {
		weights = grant.FounderWeights
	}

	return c.grantLoop(ctx, user.ID, weights, count, model.ViaAirdrop)
}
