package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withClientIP, withGZip)

	// public routes reachable during a lockout
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/global", h.getGlobalInfo)
		r.Get("/api/security/lockout", h.getLockoutStatus)
		r.Post("/api/user/createAdmin", h.createAdmin)
	})

	// login
	router.Group(func(r chi.Router) {
		r.Use(h.checkLockout)
		r.Post("/api/user/requireLogin", h.requireLogin)
		r.Post("/api/user/login", h.login)
	})

	// session routes
	router.Group(func(r chi.Router) {
		r.Use(h.checkLockout, h.checkLogin, h.checkReplayAttack)

		r.Route("/api/user", func(r chi.Router) {
			r.Post("/logout", h.logout)
			r.Get("/requireChangePwd", h.requireChangePassword)
			r.Put("/changePwd", h.changePassword)
			r.Put("/pwdGenPrefs", h.updatePwdGenPrefs)
		})

		r.Route("/api/otp", func(r chi.Router) {
			r.Post("/getQrcode", h.getTotpQRCode)
			r.Post("/bind", h.bindTotp)
			r.Get("/requireRemove", h.requireRemoveTotp)
			r.Post("/remove", h.removeTotp)
		})

		r.Route("/api/notice", func(r chi.Router) {
			r.Get("/", h.listNotices)
			r.Put("/read", h.markNoticesRead)
		})

		r.Route("/api/group", func(r chi.Router) {
			r.Get("/", h.listGroups)
			r.Post("/", h.createGroup)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", h.deleteGroup)
				r.Put("/lock", h.updateGroupLock)
				r.Put("/default", h.setDefaultGroup)
				r.Get("/requireUnlock", h.requireGroupUnlock)
				r.Post("/unlock", h.unlockGroup)
				r.Get("/certificate", h.listCertificates)
			})
		})

		r.Route("/api/certificate", func(r chi.Router) {
			r.Post("/", h.createCertificate)
			r.Get("/{id}", h.getCertificate)
			r.Put("/{id}", h.updateCertificate)
			r.Delete("/{id}", h.deleteCertificate)
		})
	})

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
