// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/token"
)

var _ = Describe("Sessions", func() {
	var (
		ctx context.Context
		db  *pgxpool.Pool
		s   *stack
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newDatabase(ctx, true)
		s = newStack(db, db)
	})

	Describe("Login", func() {
		It("issues a pair for the right password, case-insensitively", func() {
			email := uniqueEmail()
			_, err := s.registration.Register(ctx, "Login User", email, "secret1")
			Expect(err).NotTo(HaveOccurred())

			pair, err := s.authn.Login(ctx, "  "+email+"  ", "secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(pair.RefreshToken).NotTo(BeEmpty())
			Expect(count(ctx, db, "identity.refresh_tokens")).To(Equal(2))
		})

		It("does not reveal whether the email exists", func() {
			email := uniqueEmail()
			_, err := s.registration.Register(ctx, "Real User", email, "secret1")
			Expect(err).NotTo(HaveOccurred())

			_, unknownErr := s.authn.Login(ctx, "nonexistent@x.com", "anything")
			_, wrongErr := s.authn.Login(ctx, email, "wrongpassword")

			Expect(auth.IsUnauthorized(unknownErr)).To(BeTrue())
			Expect(auth.IsUnauthorized(wrongErr)).To(BeTrue())
			Expect(unknownErr.Error()).To(Equal(wrongErr.Error()))
		})
	})

	Describe("Refresh", func() {
		It("rotates the token in place and rejects the old value", func() {
			first, err := s.registration.Register(ctx, "Rotating User", uniqueEmail(), "secret1")
			Expect(err).NotTo(HaveOccurred())

			second, err := s.authn.Refresh(ctx, first.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.RefreshToken).NotTo(Equal(first.RefreshToken))
			Expect(count(ctx, db, "identity.refresh_tokens")).To(Equal(1))

			_, err = s.authn.Refresh(ctx, first.RefreshToken)
			Expect(auth.IsUnauthorized(err)).To(BeTrue())

			_, err = s.authn.Refresh(ctx, second.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects an expired token", func() {
			past := time.Now().Add(-8 * 24 * time.Hour)
			stale := newStack(db, db, token.WithClock(func() time.Time { return past }))

			pair, err := stale.registration.Register(ctx, "Expired User", uniqueEmail(), "secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(pair.RefreshTokenExpiresAt).To(BeTemporally("<", time.Now()))

			_, err = s.authn.Refresh(ctx, pair.RefreshToken)
			Expect(auth.IsUnauthorized(err)).To(BeTrue())
		})

		It("carries roles granted since the last issue", func() {
			email := uniqueEmail()
			pair, err := s.registration.Register(ctx, "Promoted User", email, "secret1")
			Expect(err).NotTo(HaveOccurred())

			Expect(s.credentials.AssignRole(ctx, email, auth.RoleAdmin)).To(Succeed())

			refreshed, err := s.authn.Refresh(ctx, pair.RefreshToken)
			Expect(err).NotTo(HaveOccurred())
			claims, err := s.issuer.Parse(refreshed.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Roles).To(ConsistOf(auth.RoleAdmin, auth.RoleMember))
		})

		It("lets exactly one concurrent caller win", func() {
			pair, err := s.registration.Register(ctx, "Racing User", uniqueEmail(), "secret1")
			Expect(err).NotTo(HaveOccurred())

			const callers = 8
			var (
				wg     sync.WaitGroup
				mu     sync.Mutex
				wins   int
				denied int
			)
			start := make(chan struct{})
			for range callers {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					<-start
					_, err := s.authn.Refresh(ctx, pair.RefreshToken)
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						wins++
					case auth.IsUnauthorized(err):
						denied++
					default:
						Fail("unexpected refresh error: " + err.Error())
					}
				}()
			}
			close(start)
			wg.Wait()

			Expect(wins).To(Equal(1))
			Expect(denied).To(Equal(callers - 1))
		})
	})
})
