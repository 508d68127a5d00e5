package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/studyprep/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/studyprep/internal/common"
	"github.com/dmitrijs2005/studyprep/internal/cryptox"
	"github.com/dmitrijs2005/studyprep/internal/dbx"
	"github.com/dmitrijs2005/studyprep/internal/logging"
)

const (
	SaltKey     = "store.salt"
	nonceSuffix = ".nonce"
)

var (
	ErrNoSecret    = errors.New("store: secret is empty")
	ErrReservedKey = errors.New("store: reserved key")
)

// SecretStore is an async string key-value store. Get returns "" and a nil
// error for a missing key.
type SecretStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type SealedStore struct {
	db     *sql.DB
	secret []byte
	log    logging.Logger

	mu  sync.Mutex
	key []byte
}

var _ SecretStore = (*SealedStore)(nil)

func NewSealedStore(db *sql.DB, secret string, log logging.Logger) (*SealedStore, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &SealedStore{
		db:     db,
		secret: []byte(secret),
		log:    log.With("component", "store"),
	}, nil
}

func (s *SealedStore) Get(ctx context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}

	cipherKey, err := s.cipherKey(ctx)
	if err != nil {
		return "", err
	}

	repo := metadata.NewSQLiteRepository(s.db)

	ciphertext, err := repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if ciphertext == nil {
		return "", nil
	}

	nonce, err := repo.Get(ctx, key+nonceSuffix)
	if err != nil {
		return "", err
	}

	plaintext, err := cryptox.Open(ciphertext, nonce, cipherKey)
	if errors.Is(err, cryptox.ErrOpen) {
		s.log.Warn(ctx, "sealed value cannot be opened, treating as absent", "key", key)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	defer common.WipeByteArray(plaintext)

	return string(plaintext), nil
}

func (s *SealedStore) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	cipherKey, err := s.cipherKey(ctx)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := cryptox.Seal([]byte(value), cipherKey)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, key, ciphertext); err != nil {
			return err
		}
		return repo.Set(ctx, key+nonceSuffix, nonce)
	})
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, key, key+nonceSuffix)
	})
}

// cipherKey derives the AES key once per store, creating the salt on first use.
func (s *SealedStore) cipherKey(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key != nil {
		return s.key, nil
	}

	var salt []byte
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, SaltKey)
		if err != nil {
			return err
		}
		if existing != nil {
			salt = existing
			return nil
		}

		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		return repo.Set(ctx, SaltKey, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("load store salt: %w", err)
	}

	s.key = cryptox.DeriveKey(s.secret, salt)
	return s.key, nil
}

func checkKey(key string) error {
	if key == "" || key == SaltKey || strings.HasSuffix(key, nonceSuffix) {
		return fmt.Errorf("%w: %q", ErrReservedKey, key)
	}
	return nil
}
