package db_test

import (
	"context"

	"daybook/internal/db"
	"daybook/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("PostgresDB", func() {
	var (
		database *db.PostgresDB
		mock     sqlmock.Sqlmock
		ctx      context.Context
	)

	BeforeEach(func() {
		sqlDB, sqlMock, err := sqlmock.New()
		Expect(err).NotTo(HaveOccurred())
		mock = sqlMock

		gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
			Logger:                 logger.Default.LogMode(logger.Silent),
			TranslateError:         true,
			SkipDefaultTransaction: true,
		})
		Expect(err).NotTo(HaveOccurred())

		database = &db.PostgresDB{DB: gormDB}
		ctx = context.Background()
	})

	AfterEach(func() {
		Expect(mock.ExpectationsWereMet()).To(Succeed())
	})

	Describe("Insert", func() {
		When("the insert succeeds", func() {
			It("should fill the store-assigned primary key", func() {
				mock.ExpectQuery(`INSERT INTO "users"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

				user := repository.User{Username: "alice", PasswordHash: "hash"}
				Expect(database.Insert(ctx, &user)).To(Succeed())
				Expect(user.ID).To(Equal(uint(7)))
			})
		})

		When("a unique constraint is violated", func() {
			It("should return a duplicate error", func() {
				mock.ExpectQuery(`INSERT INTO "users"`).
					WillReturnError(gorm.ErrDuplicatedKey)

				user := repository.User{Username: "alice", PasswordHash: "hash"}
				err := database.Insert(ctx, &user)
				Expect(err).To(MatchError(db.ErrDuplicate))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a matching row exists", func() {
			It("should load it into dest", func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = `).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}).
						AddRow(3, "alice", "hash"))

				var user repository.User
				Expect(database.GetOneBy(ctx, "username", "alice", &user)).To(Succeed())
				Expect(user.ID).To(Equal(uint(3)))
				Expect(user.Username).To(Equal("alice"))
			})
		})

		When("no row matches", func() {
			It("should return a not found error", func() {
				mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = `).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

				var user repository.User
				err := database.GetOneBy(ctx, "username", "ghost", &user)
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetAllBy", func() {
		It("should load every matching row ordered by id", func() {
			mock.ExpectQuery(`SELECT \* FROM "entries" WHERE user_id = (.+) ORDER BY id`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "notes", "photo_url"}).
					AddRow(1, 3, "Day 1", "notes", "http://x/a.jpg").
					AddRow(2, 3, "Day 2", "notes", "http://x/b.jpg"))

			var entries []repository.Entry
			Expect(database.GetAllBy(ctx, "user_id", uint(3), &entries)).To(Succeed())
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].ID).To(Equal(uint(1)))
		})

		It("should leave dest empty when nothing matches", func() {
			mock.ExpectQuery(`SELECT \* FROM "entries" WHERE user_id = `).
				WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "notes", "photo_url"}))

			var entries []repository.Entry
			Expect(database.GetAllBy(ctx, "user_id", uint(3), &entries)).To(Succeed())
			Expect(entries).To(BeEmpty())
		})
	})

	Describe("GetOneWhere", func() {
		When("a row matches all conditions", func() {
			It("should load it into dest", func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE `).
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "notes", "photo_url"}).
						AddRow(5, 3, "Day 1", "notes", "http://x/a.jpg"))

				var entry repository.Entry
				Expect(database.GetOneWhere(ctx, map[string]any{"id": uint(5), "user_id": uint(3)}, &entry)).To(Succeed())
				Expect(entry.ID).To(Equal(uint(5)))
			})
		})

		When("no row matches", func() {
			It("should return a not found error", func() {
				mock.ExpectQuery(`SELECT \* FROM "entries" WHERE `).
					WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "notes", "photo_url"}))

				var entry repository.Entry
				err := database.GetOneWhere(ctx, map[string]any{"id": uint(5), "user_id": uint(3)}, &entry)
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("UpdateWhere", func() {
		It("should report how many rows were touched", func() {
			mock.ExpectExec(`UPDATE "entries" SET `).
				WillReturnResult(sqlmock.NewResult(0, 1))

			affected, err := database.UpdateWhere(ctx, &repository.Entry{},
				map[string]any{"id": uint(5), "user_id": uint(3)},
				map[string]any{"title": "updated"})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(Equal(int64(1)))
		})

		It("should report zero when nothing matches", func() {
			mock.ExpectExec(`UPDATE "entries" SET `).
				WillReturnResult(sqlmock.NewResult(0, 0))

			affected, err := database.UpdateWhere(ctx, &repository.Entry{},
				map[string]any{"id": uint(5), "user_id": uint(3)},
				map[string]any{"title": "updated"})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(BeZero())
		})
	})

	Describe("DeleteWhere", func() {
		It("should report how many rows were deleted", func() {
			mock.ExpectExec(`DELETE FROM "entries" WHERE `).
				WillReturnResult(sqlmock.NewResult(0, 1))

			affected, err := database.DeleteWhere(ctx, &repository.Entry{},
				map[string]any{"id": uint(5), "user_id": uint(3)})
			Expect(err).NotTo(HaveOccurred())
			Expect(affected).To(Equal(int64(1)))
		})
	})
})
