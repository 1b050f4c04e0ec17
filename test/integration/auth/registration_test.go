// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package auth_test

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/gatekeeper/gatekeeper/internal/auth"
	authpg "github.com/gatekeeper/gatekeeper/internal/auth/postgres"
)

var _ = Describe("Registration", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("with a shared transaction", func() {
		It("creates the credential, role, principal and refresh token", func() {
			db := newDatabase(ctx, true)
			s := newStack(db, db)
			email := uniqueEmail()

			pair, err := s.registration.Register(ctx, "Ada Lovelace", email, "secret1")
			Expect(err).NotTo(HaveOccurred())
			Expect(pair.AccessToken).NotTo(BeEmpty())
			Expect(pair.RefreshToken).NotTo(BeEmpty())

			claims, err := s.issuer.Parse(pair.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Email).To(Equal(email))
			Expect(claims.Roles).To(ConsistOf(auth.RoleMember))

			me, err := s.profiles.Me(ctx, claims.Subject)
			Expect(err).NotTo(HaveOccurred())
			Expect(me.Name).To(Equal("Ada Lovelace"))
			Expect(me.IdentityID.String()).To(Equal(claims.Subject))

			Expect(count(ctx, db, "identity.refresh_tokens")).To(Equal(1))
		})

		It("leaves no rows behind when the default role is missing", func() {
			db := newDatabase(ctx, false)
			s := newStack(db, db)

			_, err := s.registration.Register(ctx, "Ada Lovelace", uniqueEmail(), "secret1")
			Expect(err).To(HaveOccurred())

			Expect(count(ctx, db, "identity.credentials")).To(Equal(0))
			Expect(count(ctx, db, "identity.credential_roles")).To(Equal(0))
			Expect(count(ctx, db, "app.principals")).To(Equal(0))
			Expect(count(ctx, db, "identity.refresh_tokens")).To(Equal(0))
		})

		It("rejects an email that differs only in case", func() {
			db := newDatabase(ctx, true)
			s := newStack(db, db)
			email := uniqueEmail()

			_, err := s.registration.Register(ctx, "First User", email, "secret1")
			Expect(err).NotTo(HaveOccurred())

			_, err = s.registration.Register(ctx, "Second User", strings.ToUpper(email), "secret1")
			reasons, ok := auth.RegistrationReasons(err)
			Expect(ok).To(BeTrue())
			Expect(reasons).To(HaveKey(auth.ReasonDuplicateEmail))

			Expect(count(ctx, db, "identity.credentials")).To(Equal(1))
			Expect(count(ctx, db, "app.principals")).To(Equal(1))
		})

		It("rolls back the credential when the principal name is invalid", func() {
			db := newDatabase(ctx, true)
			s := newStack(db, db)

			_, err := s.registration.Register(ctx, "Al", uniqueEmail(), "secret1")
			reasons, ok := auth.RegistrationReasons(err)
			Expect(ok).To(BeTrue())
			Expect(reasons).To(HaveKey(auth.ReasonInvalidName))

			Expect(count(ctx, db, "identity.credentials")).To(Equal(0))
		})
	})

	Describe("across separate databases", func() {
		It("stores the principal in the principal database", func() {
			identity := newDatabase(ctx, true)
			principals := newDatabase(ctx, false)
			s := newStack(identity, principals)

			_, err := s.registration.Register(ctx, "Grace Hopper", uniqueEmail(), "secret1")
			Expect(err).NotTo(HaveOccurred())

			Expect(count(ctx, identity, "identity.credentials")).To(Equal(1))
			Expect(count(ctx, identity, "app.principals")).To(Equal(0))
			Expect(count(ctx, principals, "app.principals")).To(Equal(1))
		})

		It("deletes the credential when the principal write fails", func() {
			identity := newDatabase(ctx, true)
			principals := newDatabase(ctx, false)
			s := newStack(identity, principals)
			email := uniqueEmail()

			squatter, err := auth.NewPrincipal(ulid.Make(), "Squatter", email, time.Now())
			Expect(err).NotTo(HaveOccurred())
			Expect(authpg.NewPrincipalRepository(principals).Create(ctx, squatter)).To(Succeed())

			_, err = s.registration.Register(ctx, "Grace Hopper", email, "secret1")
			reasons, ok := auth.RegistrationReasons(err)
			Expect(ok).To(BeTrue())
			Expect(reasons).To(HaveKey(auth.ReasonDuplicateEmail))

			Expect(count(ctx, identity, "identity.credentials")).To(Equal(0))
			Expect(count(ctx, identity, "identity.credential_roles")).To(Equal(0))
			Expect(count(ctx, principals, "app.principals")).To(Equal(1))
		})

		It("deletes the credential when the default role is missing", func() {
			identity := newDatabase(ctx, false)
			principals := newDatabase(ctx, false)
			s := newStack(identity, principals)

			_, err := s.registration.Register(ctx, "Grace Hopper", uniqueEmail(), "secret1")
			Expect(err).To(HaveOccurred())

			Expect(count(ctx, identity, "identity.credentials")).To(Equal(0))
			Expect(count(ctx, principals, "app.principals")).To(Equal(0))
		})
	})
})
