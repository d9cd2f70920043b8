package review_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	appreview "github.com/farhanadi/shopfront/application/review"
	"github.com/farhanadi/shopfront/constant"
	reviewmocks "github.com/farhanadi/shopfront/mocks/repository/review"
	shopmocks "github.com/farhanadi/shopfront/mocks/repository/shop"
	"github.com/farhanadi/shopfront/model"
	"github.com/farhanadi/shopfront/thirdparty/rabbitmq"
	cerr "github.com/farhanadi/shopfront/utils/errors"
)

// recordingPublisher captures published messages so tests can assert on
// the event without a live broker.
type recordingPublisher struct {
	published []rabbitmq.ReviewCreatedMessage
	err       error
}

func (p *recordingPublisher) PublishReviewCreated(msg rabbitmq.ReviewCreatedMessage) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, msg)
	return nil
}

func assertErrCode(t *testing.T, err error, errCode constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[errCode] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[errCode])
	}
}

func TestReviewApp_CreateReview(t *testing.T) {
	t.Run("success: review stored and event published", func(t *testing.T) {
		reviewRepo := reviewmocks.NewReviewRepository(t)
		shopRepo := shopmocks.NewShopRepository(t)
		pub := &recordingPublisher{}

		shopRepo.
			On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
			Return(&model.ShopEntity{ID: 7, Slug: "book-nook"}, nil).
			Once()
		reviewRepo.
			On("Create", mock.Anything, "bob", "great shop", uint64(7)).
			Return(&model.ReviewEntity{ID: 3, Username: "bob", Text: "great shop", ShopID: 7}, nil).
			Once()

		app := appreview.NewReviewApp(reviewRepo, shopRepo, pub)
		got, err := app.CreateReview(context.Background(), "book-nook", &model.CreateReviewRequest{
			Username: "bob",
			Text:     "great shop",
		})
		if err != nil {
			t.Fatalf("CreateReview() error = %v", err)
		}
		want := &model.ReviewEntity{ID: 3, Username: "bob", Text: "great shop", ShopID: 7}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("CreateReview() = %+v, want %+v", got, want)
		}

		if len(pub.published) != 1 {
			t.Fatalf("published events = %d, want 1", len(pub.published))
		}
		msg := pub.published[0]
		if msg.ReviewID != 3 || msg.ShopID != 7 || msg.Username != "bob" {
			t.Fatalf("published message = %+v", msg)
		}
		if msg.CreatedAt.IsZero() {
			t.Fatal("published message has zero CreatedAt")
		}
	})

	t.Run("success: publish failure does not fail the request", func(t *testing.T) {
		reviewRepo := reviewmocks.NewReviewRepository(t)
		shopRepo := shopmocks.NewShopRepository(t)
		pub := &recordingPublisher{err: errors.New("broker down")}

		shopRepo.
			On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
			Return(&model.ShopEntity{ID: 7, Slug: "book-nook"}, nil).
			Once()
		reviewRepo.
			On("Create", mock.Anything, "bob", "great shop", uint64(7)).
			Return(&model.ReviewEntity{ID: 3, Username: "bob", Text: "great shop", ShopID: 7}, nil).
			Once()

		app := appreview.NewReviewApp(reviewRepo, shopRepo, pub)
		got, err := app.CreateReview(context.Background(), "book-nook", &model.CreateReviewRequest{
			Username: "bob",
			Text:     "great shop",
		})
		if err != nil {
			t.Fatalf("CreateReview() error = %v", err)
		}
		if got.ID != 3 {
			t.Fatalf("CreateReview() id = %d, want 3", got.ID)
		}
	})

	t.Run("success: nil publisher skips events", func(t *testing.T) {
		reviewRepo := reviewmocks.NewReviewRepository(t)
		shopRepo := shopmocks.NewShopRepository(t)

		shopRepo.
			On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
			Return(&model.ShopEntity{ID: 7, Slug: "book-nook"}, nil).
			Once()
		reviewRepo.
			On("Create", mock.Anything, "bob", "great shop", uint64(7)).
			Return(&model.ReviewEntity{ID: 3, Username: "bob", Text: "great shop", ShopID: 7}, nil).
			Once()

		app := appreview.NewReviewApp(reviewRepo, shopRepo, nil)
		if _, err := app.CreateReview(context.Background(), "book-nook", &model.CreateReviewRequest{
			Username: "bob",
			Text:     "great shop",
		}); err != nil {
			t.Fatalf("CreateReview() error = %v", err)
		}
	})

	t.Run("error: unknown shop slug", func(t *testing.T) {
		reviewRepo := reviewmocks.NewReviewRepository(t)
		shopRepo := shopmocks.NewShopRepository(t)

		shopRepo.
			On("Get", mock.Anything, &model.ShopFilter{Slug: "missing"}).
			Return(nil, nil).
			Once()

		app := appreview.NewReviewApp(reviewRepo, shopRepo, nil)
		_, err := app.CreateReview(context.Background(), "missing", &model.CreateReviewRequest{
			Username: "bob",
			Text:     "great shop",
		})
		if err == nil {
			t.Fatal("CreateReview() expected error")
		}
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: repository failure", func(t *testing.T) {
		reviewRepo := reviewmocks.NewReviewRepository(t)
		shopRepo := shopmocks.NewShopRepository(t)

		shopRepo.
			On("Get", mock.Anything, &model.ShopFilter{Slug: "book-nook"}).
			Return(&model.ShopEntity{ID: 7, Slug: "book-nook"}, nil).
			Once()
		reviewRepo.
			On("Create", mock.Anything, "bob", "great shop", uint64(7)).
			Return(nil, errors.New("db error")).
			Once()

		app := appreview.NewReviewApp(reviewRepo, shopRepo, nil)
		_, err := app.CreateReview(context.Background(), "book-nook", &model.CreateReviewRequest{
			Username: "bob",
			Text:     "great shop",
		})
		if err == nil {
			t.Fatal("CreateReview() expected error")
		}
		assertErrCode(t, err, constant.ErrInternal)
	})
}
