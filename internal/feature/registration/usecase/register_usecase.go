// Package usecase はregistrationフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tracker_backend/internal/feature/registration/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByMail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByMail(ctx context.Context, mail string) (*entity.User, error)
}

// PasswordHasher はパスワードのハッシュ化と検証を抽象化します。
type PasswordHasher interface {
	// Hash は平文パスワードからソルト付きダイジェストを生成します。
	Hash(plaintext string) (string, error)
	// Verify は平文パスワードがダイジェストと一致するか検証します。
	Verify(plaintext, digest string) bool
}

// TokenIssuer は登録成功時のトークン発行を抽象化します。
type TokenIssuer interface {
	// Issue は指定されたユーザーIDの署名済みトークンを生成します。
	Issue(userID uint) (string, error)
}

// RegisterInput は登録フローへの入力です。バリデーション済みのフォーム値を保持します。
// プランはクライアントから受け取りません（常にシステムがデフォルト値を割り当てます）。
type RegisterInput struct {
	Mail           string
	PenName        string
	RealName       string
	Password       string
	Zipcode        string
	Prefectures    string
	Municipalities string
	TownName       string
	Address        string
	Obj            string
}

// RegisterResult は登録成功時の結果です。
// Token はトークン発行が無効な構成では空文字列になります。
type RegisterResult struct {
	UserID uint
	Token  string
}

// registerUsecase は登録ビジネスロジックを実装します。
type registerUsecase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewRegisterUsecase はregisterUsecaseの新しいインスタンスを生成します。
// tokens はnil可: nilの場合、トークン発行ステップはスキップされます。
func NewRegisterUsecase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *registerUsecase {
	return &registerUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// NormalizeMail はメールアドレスを比較・保存用に正規化します。
// メール一意性は大文字小文字を区別しない方針のため、書き込み時に小文字へ揃えます。
func NormalizeMail(mail string) string {
	return strings.ToLower(strings.TrimSpace(mail))
}

// Register は新規ユーザーを登録します。
//
// 手順:
//  1. メールアドレスを正規化し、重複を事前チェックする（高速な拒否用）。
//  2. パスワードをbcryptでハッシュ化する。
//  3. プランをデフォルト値に固定して新規ユーザーを永続化する。
//     事前チェックをすり抜けた同時登録はユニークインデックスで弾かれ、
//     ErrEmailAlreadyExistsとして同じ結果にマップされる。
//  4. TokenIssuerが構成されていればトークンを発行する。
func (u *registerUsecase) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	mail := NormalizeMail(in.Mail)

	// 1. メール重複の事前チェック（UX向けの高速パス。正しさの保証はユニークインデックス側）
	if _, err := u.users.FindByMail(ctx, mail); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing mail: %w", err)
	}

	// 2. パスワードのハッシュ化
	digest, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// 3. 新規ユーザーの永続化。プランは常にデフォルト（クライアント値は受け付けない）
	user := &entity.User{
		Mail:           mail,
		PenName:        in.PenName,
		RealName:       in.RealName,
		Password:       digest,
		Zipcode:        in.Zipcode,
		Prefectures:    in.Prefectures,
		Municipalities: in.Municipalities,
		TownName:       in.TownName,
		Address:        in.Address,
		Obj:            in.Obj,
		Plan:           entity.PlanFree,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			// 事前チェックとの間に割り込んだ同時登録
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result := &RegisterResult{UserID: user.ID}

	// 4. トークン発行（構成されている場合のみ）
	if u.tokens != nil {
		token, err := u.tokens.Issue(user.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to issue token: %w", err)
		}
		result.Token = token
	}

	return result, nil
}
