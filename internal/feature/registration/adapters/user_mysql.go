// Package adapters はregistrationフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"tracker_backend/internal/feature/registration/domain/entity"
	"tracker_backend/internal/feature/registration/usecase"
)

// userMySQL はUserRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。コネクションの取得・返却は
// GORMのコネクションプールに委譲され、成功・失敗どちらの経路でも解放されます。
type userMySQL struct {
	db *gorm.DB
}

// userMySQLがUserRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.UserRepository = (*userMySQL)(nil)

// NewUserMySQL は指定されたgorm.DB接続でuserMySQLの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewUserMySQL(db *gorm.DB) *userMySQL {
	return &userMySQL{db: db}
}

// Create はユーザーをデータベースに追加します。IDと作成・更新タイムスタンプは
// 永続化時に割り当てられ、引数のエンティティに書き戻されます。
// メールアドレスのユニークインデックスに違反した場合、usecase.ErrEmailAlreadyExistsを返します。
func (r *userMySQL) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// MySQLエラー1062: ユニークキーの重複エントリ
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return usecase.ErrEmailAlreadyExists
		}
		// TranslateError有効時、各ダイアレクタは重複キーをErrDuplicatedKeyに変換する
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindByMail はメールアドレスでユーザーを取得します。
// 呼び出し側が正規化済みのメールアドレスを渡すことを前提とします。
// ユーザーが存在しない場合、usecase.ErrUserNotFoundを返します。
func (r *userMySQL) FindByMail(ctx context.Context, mail string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("mail = ?", mail).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
