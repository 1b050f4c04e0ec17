// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/gatekeeper/gatekeeper/internal/api"
)

type tokensBody struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

var _ = Describe("HTTP API", func() {
	var (
		ctx    context.Context
		server *httptest.Server
	)

	BeforeEach(func() {
		ctx = context.Background()
		db := newDatabase(ctx, true)
		s := newStack(db, db)

		router, err := api.NewRouter(api.Deps{
			Registrar:     s.registration,
			Authenticator: s.authn,
			Profiles:      s.profiles,
			Verifier:      s.issuer,
			Logger:        slog.New(slog.NewTextHandler(GinkgoWriter, nil)),
		})
		Expect(err).NotTo(HaveOccurred())
		server = httptest.NewServer(router)
		DeferCleanup(server.Close)
	})

	post := func(path, body string) (int, []byte) {
		GinkgoHelper()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+path, strings.NewReader(body))
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Content-Type", "application/json")
		resp, err := server.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		return resp.StatusCode, data
	}

	decodeTokens := func(data []byte) tokensBody {
		GinkgoHelper()
		var out tokensBody
		Expect(json.Unmarshal(data, &out)).To(Succeed())
		return out
	}

	It("registers Alice, rotates her refresh token and rejects the original", func() {
		status, data := post("/auth/register",
			`{"name":"Alice Example","email":"alice@example.com","password":"secret1","confirmPassword":"secret1"}`)
		Expect(status).To(Equal(http.StatusOK), string(data))
		registered := decodeTokens(data)
		Expect(registered.AccessToken).NotTo(BeEmpty())
		Expect(registered.RefreshToken).NotTo(BeEmpty())

		status, data = post("/auth/refresh", `{"refreshToken":"`+registered.RefreshToken+`"}`)
		Expect(status).To(Equal(http.StatusOK), string(data))
		rotated := decodeTokens(data)
		Expect(rotated.RefreshToken).NotTo(BeEmpty())
		Expect(rotated.RefreshToken).NotTo(Equal(registered.RefreshToken))

		status, _ = post("/auth/refresh", `{"refreshToken":"`+registered.RefreshToken+`"}`)
		Expect(status).To(Equal(http.StatusUnauthorized))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/users/me", nil)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+rotated.AccessToken)
		resp, err := server.Client().Do(req)
		Expect(err).NotTo(HaveOccurred())
		defer resp.Body.Close()
		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		var me map[string]any
		Expect(json.NewDecoder(resp.Body).Decode(&me)).To(Succeed())
		Expect(me).To(HaveKeyWithValue("name", "Alice Example"))
		Expect(me).To(HaveKeyWithValue("email", "alice@example.com"))
	})

	It("answers unknown emails and wrong passwords identically", func() {
		status, data := post("/auth/register",
			`{"name":"Real User","email":"real@x.com","password":"secret1","confirmPassword":"secret1"}`)
		Expect(status).To(Equal(http.StatusOK), string(data))

		unknownStatus, unknownBody := post("/auth/login", `{"email":"nonexistent@x.com","password":"anything"}`)
		wrongStatus, wrongBody := post("/auth/login", `{"email":"real@x.com","password":"wrongpassword"}`)

		Expect(unknownStatus).To(Equal(http.StatusUnauthorized))
		Expect(wrongStatus).To(Equal(unknownStatus))
		Expect(wrongBody).To(MatchJSON(unknownBody))
	})

	It("reports a duplicate registration as a validation problem", func() {
		body := `{"name":"Dup User","email":"dup@example.com","password":"secret1","confirmPassword":"secret1"}`
		status, _ := post("/auth/register", body)
		Expect(status).To(Equal(http.StatusOK))

		status, data := post("/auth/register", strings.Replace(body, "dup@", "DUP@", 1))
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(string(data)).To(ContainSubstring("DuplicateEmail"))
	})
})
