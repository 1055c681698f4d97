package pages

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rx-education-api/config"
	"rx-education-api/internal/auth"
	"rx-education-api/internal/education"
	"rx-education-api/internal/lookup"
	"rx-education-api/internal/middlewares"
	"rx-education-api/internal/util"
	"rx-education-api/internal/videoutil"
)

type PageController struct {
	Cfg              config.Config
	AuthService      auth.AuthServicePort
	EducationService education.EducationServicePort
	LookupService    lookup.LookupServiceAPI
}

type recordForm struct {
	GPI      string `form:"gpi"`
	Title    string `form:"title"`
	VideoURL string `form:"video_url"`
	Summary  string `form:"summary"`
}

func (f recordForm) toInput() education.EducationInput {
	input := education.EducationInput{GPI: f.GPI, Title: f.Title}
	if f.VideoURL != "" {
		input.VideoURL = &f.VideoURL
	}
	if f.Summary != "" {
		input.Summary = &f.Summary
	}
	return input
}

type loginForm struct {
	Email      string `form:"email"`
	Password   string `form:"password"`
	RememberMe bool   `form:"remember_me"`
}

// GET /
func (pc *PageController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{})
}

// GET /login. A browser that already carries a session cookie is sent
// straight to the dashboard; the cookie's validity is checked there.
func (pc *PageController) LoginForm(c *gin.Context) {
	if _, err := c.Cookie(auth.AccessCookie); err == nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// POST /login
func (pc *PageController) LoginSubmit(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Error": "Email and password are required",
			"Email": form.Email,
		})
		return
	}

	user, err := pc.AuthService.GetUser(form.Email)
	if err != nil || util.VerifyPassword(form.Password, user.Password) != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error":      "Invalid email or password",
			"Email":      form.Email,
			"RememberMe": form.RememberMe,
		})
		return
	}

	if err := auth.IssueSessionCookies(c, pc.Cfg, user, form.RememberMe); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Could not start a session, please try again",
			"Email": form.Email,
		})
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// GET /dashboard
func (pc *PageController) Dashboard(c *gin.Context) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var editID uint
	form := recordForm{}
	if raw := c.Query("edit"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err == nil {
			if record, getErr := pc.EducationService.Get(pharmacyID, uint(id)); getErr == nil {
				editID = record.ID
				form = recordForm{GPI: record.GPI, Title: record.Title}
				if record.VideoURL != nil {
					form.VideoURL = *record.VideoURL
				}
				if record.Summary != nil {
					form.Summary = *record.Summary
				}
			}
		}
	}

	pc.renderDashboard(c, http.StatusOK, pharmacyID, editID, form, "")
}

// POST /dashboard/create
func (pc *PageController) CreateSubmit(c *gin.Context) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	var form recordForm
	_ = c.ShouldBind(&form)

	if _, err := pc.EducationService.Create(pharmacyID, form.toInput()); err != nil {
		status := http.StatusInternalServerError
		msg := "Could not save the record, please try again"
		if errors.Is(err, education.ErrInvalidInput) {
			status = http.StatusBadRequest
			msg = err.Error()
		}
		pc.renderDashboard(c, status, pharmacyID, 0, form, msg)
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /dashboard/:id/update
func (pc *PageController) UpdateSubmit(c *gin.Context) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	var form recordForm
	_ = c.ShouldBind(&form)

	if _, err := pc.EducationService.Update(pharmacyID, uint(id), form.toInput()); err != nil {
		switch {
		case errors.Is(err, education.ErrInvalidInput):
			pc.renderDashboard(c, http.StatusBadRequest, pharmacyID, uint(id), form, err.Error())
		case errors.Is(err, education.ErrNotFound):
			pc.renderDashboard(c, http.StatusNotFound, pharmacyID, 0, recordForm{}, "That record no longer exists")
		default:
			pc.renderDashboard(c, http.StatusInternalServerError, pharmacyID, uint(id), form, "Could not save the record, please try again")
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /dashboard/:id/delete
func (pc *PageController) DeleteSubmit(c *gin.Context) {
	pharmacyID, ok := middlewares.SessionPharmacyID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err == nil {
		// A not-found here means it was already gone, which is fine.
		if delErr := pc.EducationService.Delete(pharmacyID, uint(id)); delErr != nil && !errors.Is(delErr, education.ErrNotFound) {
			pc.renderDashboard(c, http.StatusInternalServerError, pharmacyID, 0, recordForm{}, "Could not delete the record, please try again")
			return
		}
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// POST /dashboard/logout
func (pc *PageController) Logout(c *gin.Context) {
	auth.ClearSessionCookies(c)
	c.Redirect(http.StatusFound, "/login")
}

// GET /p/:slug/:gpi serves the patient-facing page. Same no-store rule as
// the JSON lookup: clinical content never sits in shared caches.
func (pc *PageController) PatientPage(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	record, err := pc.LookupService.FindBySlugAndGPI(c.Param("slug"), c.Param("gpi"))
	if err != nil {
		status := http.StatusNotFound
		if !errors.Is(err, lookup.ErrNotFound) {
			status = http.StatusInternalServerError
		}
		c.HTML(status, "patient.html", gin.H{"Found": false})
		return
	}

	data := gin.H{
		"Found":  true,
		"Title":  record.Title,
		"Player": "none",
	}
	if record.Summary != nil {
		data["Summary"] = *record.Summary
	}
	if record.VideoURL != nil {
		data["VideoURL"] = *record.VideoURL
		data["Player"] = playerName(videoutil.Player(*record.VideoURL))
	}

	c.HTML(http.StatusOK, "patient.html", data)
}

func playerName(kind videoutil.Kind) string {
	switch kind {
	case videoutil.KindYouTube:
		return "youtube"
	case videoutil.KindVimeo:
		return "vimeo"
	case videoutil.KindFile:
		return "file"
	case videoutil.KindUnknown:
		return "unknown"
	}
	return "none"
}

func (pc *PageController) renderDashboard(c *gin.Context, status int, pharmacyID, editID uint, form recordForm, errMsg string) {
	records, err := pc.EducationService.List(pharmacyID)
	if err != nil {
		records = nil
		if errMsg == "" {
			errMsg = "Could not load your records"
		}
		status = http.StatusInternalServerError
	}

	// The submitted values belong to whichever form was active; the other
	// one renders blank.
	var createForm, editForm recordForm
	if editID != 0 {
		editForm = form
	} else {
		createForm = form
	}

	c.HTML(status, "dashboard.html", gin.H{
		"Records":    records,
		"EditID":     editID,
		"CreateForm": createForm,
		"EditForm":   editForm,
		"Error":      errMsg,
	})
}
