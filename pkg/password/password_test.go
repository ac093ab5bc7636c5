package password_test

import (
	"strings"

	"daybook/pkg/password"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Password", func() {
	var raw string

	BeforeEach(func() {
		raw = "correct horse battery staple"
	})

	Describe("Hash", func() {
		It("should produce a PHC-encoded argon2id hash", func() {
			encoded, err := password.Hash(raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(HavePrefix("$argon2id$v=19$"))
			Expect(strings.Count(encoded, "$")).To(Equal(5))
		})

		It("should salt every hash independently", func() {
			first, err := password.Hash(raw)
			Expect(err).NotTo(HaveOccurred())

			second, err := password.Hash(raw)
			Expect(err).NotTo(HaveOccurred())

			Expect(first).NotTo(Equal(second))
		})
	})

	Describe("Verify", func() {
		var encoded string

		BeforeEach(func() {
			var err error
			encoded, err = password.Hash(raw)
			Expect(err).NotTo(HaveOccurred())
		})

		When("the password matches", func() {
			It("should succeed", func() {
				Expect(password.Verify(encoded, raw)).To(Succeed())
			})
		})

		When("the password does not match", func() {
			It("should return a mismatch error", func() {
				err := password.Verify(encoded, "not the password")
				Expect(err).To(MatchError(password.ErrMismatch))
			})
		})

		When("the encoded hash is malformed", func() {
			It("should return an invalid hash error", func() {
				err := password.Verify("not-an-argon2-hash", raw)
				Expect(err).To(MatchError(password.ErrInvalidHash))
			})
		})

		When("the encoded hash uses another algorithm", func() {
			It("should return an invalid hash error", func() {
				bcryptHash := "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK"
				err := password.Verify(bcryptHash, raw)
				Expect(err).To(MatchError(password.ErrInvalidHash))
			})
		})
	})
})
