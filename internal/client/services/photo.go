package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/ethiocareer/careercli/internal/client/events"
	"github.com/ethiocareer/careercli/internal/client/storage"
	"github.com/ethiocareer/careercli/internal/filex"
	"github.com/gabriel-vasile/mimetype"
)

// MaxPhotoBytes caps the size of a profile photo file.
const MaxPhotoBytes = 2_000_000

var (
	ErrPhotoTooLarge = errors.New("photo too large")
	ErrPhotoNotImage = errors.New("photo is not an image")
	ErrPhotoInvalid  = errors.New("invalid image")
)

type Publisher interface {
	Publish(e events.Event)
}

// PhotoService keeps a locally cached profile photo per user. The photo
// never leaves the machine.
type PhotoService interface {
	// Get returns the data URL cached for userID, or "" when none is set.
	Get(ctx context.Context, userID int64) (string, error)
	Set(ctx context.Context, userID int64, data []byte) (string, error)
	SetFromFile(ctx context.Context, userID int64, path string) (string, error)
	Clear(ctx context.Context, userID int64) error
}

type photoService struct {
	kv  storage.Store
	bus Publisher
}

func NewPhotoService(kv storage.Store, bus Publisher) PhotoService {
	return &photoService{kv: kv, bus: bus}
}

func (p *photoService) Get(ctx context.Context, userID int64) (string, error) {
	raw, err := p.kv.Get(ctx, storage.PhotoKey(userID))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	return string(raw), nil
}

func (p *photoService) SetFromFile(ctx context.Context, userID int64, path string) (string, error) {
	data, err := filex.ReadLimited(path, MaxPhotoBytes)
	if errors.Is(err, filex.ErrTooLarge) {
		return "", ErrPhotoTooLarge
	}
	if err != nil {
		return "", err
	}
	return p.Set(ctx, userID, data)
}

func (p *photoService) Set(ctx context.Context, userID int64, data []byte) (string, error) {
	url, err := PhotoDataURL(data)
	if err != nil {
		return "", err
	}
	if err := p.kv.Set(ctx, storage.PhotoKey(userID), []byte(url)); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	p.bus.Publish(events.Event{Topic: events.TopicProfilePhoto, UserID: userID})
	return url, nil
}

func (p *photoService) Clear(ctx context.Context, userID int64) error {
	if err := p.kv.Delete(ctx, storage.PhotoKey(userID)); err != nil {
		return fmt.Errorf("clear photo: %w", err)
	}
	p.bus.Publish(events.Event{Topic: events.TopicProfilePhoto, UserID: userID})
	return nil
}

// PhotoDataURL checks data and encodes it as a data:image/...;base64 URL.
func PhotoDataURL(data []byte) (string, error) {
	if len(data) > MaxPhotoBytes {
		return "", ErrPhotoTooLarge
	}
	if len(data) == 0 {
		return "", ErrPhotoInvalid
	}
	mime := mimetype.Detect(data)
	kind, _, _ := strings.Cut(mime.String(), ";")
	if !strings.HasPrefix(kind, "image/") {
		return "", ErrPhotoNotImage
	}
	url := "data:" + kind + ";base64," + base64.StdEncoding.EncodeToString(data)
	if !strings.HasPrefix(url, "data:image/") {
		return "", ErrPhotoInvalid
	}
	return url, nil
}
