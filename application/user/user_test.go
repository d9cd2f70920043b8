package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	appuser "github.com/farhanadi/shopfront/application/user"
	"github.com/farhanadi/shopfront/constant"
	usermocks "github.com/farhanadi/shopfront/mocks/repository/user"
	"github.com/farhanadi/shopfront/model"
	cerr "github.com/farhanadi/shopfront/utils/errors"
)

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user stores a hash, not the plaintext",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
					Return(false, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						if ent.Username != "alice" || ent.Email != "alice@example.com" {
							return false
						}
						// The stored value must be a verifiable hash and
						// never the plaintext itself.
						if ent.PasswordHash == "password123" {
							return false
						}
						if bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) != nil {
							return false
						}
						return bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("anything-else")) != nil
					})).
					Return(&model.UserEntity{
						ID:       1,
						Username: "alice",
						Email:    "alice@example.com",
					}, nil).
					Once()
			},
			want: &model.UserResponse{
				ID:       1,
				Username: "alice",
				Email:    "alice@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: username or email already taken",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
					Return(true, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: concurrent register loses the race and hits the unique constraint",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
					Return(false, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_users_username'"}).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Username: "alice",
					Email:    "alice@example.com",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").
					Return(false, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.want.ID || got.Username != tt.want.Username || got.Email != tt.want.Email {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	type fields struct {
		userRepo *usermocks.UserRepository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.UserResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with correct password",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Username: "alice",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "alice",
						Email:        "alice@example.com",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want: &model.UserResponse{
				ID:       1,
				Username: "alice",
				Email:    "alice@example.com",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Username: "nobody",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "nobody"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: wrong password",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Username: "alice",
					Password: "wrongpassword",
				},
			},
			mockCall: func(f fields) {
				hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "alice",
						PasswordHash: string(hashedPassword),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: repository Get returns error",
			fields: fields{
				userRepo: usermocks.NewUserRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Username: "alice",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "alice"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.userRepo)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ID != tt.want.ID || got.Username != tt.want.Username || got.Email != tt.want.Email {
				t.Fatalf("Login() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
