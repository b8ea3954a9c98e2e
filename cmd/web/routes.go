package main

import "net/http"

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	var (
		noAuth = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(secureHeaders(
				app.crossOriginProtection(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
					app.authenticate(app.timeout(next))))))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("GET /api/healthy", noAuth(http.HandlerFunc(app.healthy)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.loginPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logoutPOST)))

	mux.Handle("GET /api/exercises", session(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /api/equipment-presets", session(http.HandlerFunc(app.equipmentPresetsGET)))
	mux.Handle("POST /api/exercises/generate", mustSession(http.HandlerFunc(app.exerciseGeneratePOST)))

	mux.Handle("POST /api/workouts", mustSession(http.HandlerFunc(app.workoutsPOST)))
	mux.Handle("GET /api/workouts", mustSession(http.HandlerFunc(app.workoutsGET)))
	mux.Handle("DELETE /api/workouts/{id}", mustSession(http.HandlerFunc(app.workoutDELETE)))
	mux.Handle("POST /api/workouts/{id}/review", mustSession(http.HandlerFunc(app.workoutReviewPOST)))

	mux.Handle("GET /api/exercises/{exerciseID}/history", mustSession(http.HandlerFunc(app.exerciseHistoryGET)))
	mux.Handle("GET /api/exercises/{exerciseID}/suggestion", mustSession(http.HandlerFunc(app.suggestionGET)))
	mux.Handle("GET /api/exercises/{exerciseID}/adaptation", mustSession(http.HandlerFunc(app.adaptationGET)))
	mux.Handle("GET /api/deload", mustSession(http.HandlerFunc(app.deloadGET)))

	mux.Handle("POST /api/programs/generate", mustSession(http.HandlerFunc(app.programGeneratePOST)))
	mux.Handle("POST /api/programs", mustSession(http.HandlerFunc(app.programsPOST)))
	mux.Handle("GET /api/programs", mustSession(http.HandlerFunc(app.programsGET)))
	mux.Handle("GET /api/programs/{id}", mustSession(http.HandlerFunc(app.programGET)))
	mux.Handle("DELETE /api/programs/{id}", mustSession(http.HandlerFunc(app.programDELETE)))
	mux.Handle("POST /api/programs/{id}/activate", mustSession(http.HandlerFunc(app.programActivatePOST)))

	return mux
}
