package certificateRoutes

import (
	certificateController "elearn/controllers/certificate"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCertificateRoutes sets up certificate request and issuance routes
func SetupCertificateRoutes(app *fiber.App) {
	group := app.Group("/certificates", middleware.JWTMiddleware)

	group.Post("/request/:courseId", certificateController.RequestCertificate)
	group.Get("/", certificateController.GetStudentCertificates)

	group.Put("/approve/:requestId",
		middleware.RequireRole("ADMIN"),
		certificateController.ApproveCertificateRequest)
	group.Put("/reject/:requestId",
		middleware.RequireRole("ADMIN"),
		certificateController.RejectCertificateRequest)
}
