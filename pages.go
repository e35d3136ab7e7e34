package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// The view layer is hand-rolled templ components. Every page shares the
// layout below; handlers never write HTML themselves.

func esc(s string) string {
	return templ.EscapeString(s)
}

func page(title string, cd *CommonData, body func(ctx context.Context, w io.Writer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(&b, "<title>%s</title>", esc(title))
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"/static/%s/style.css\">", esc(cd.BuildKey))
		b.WriteString("</head><body>")
		if err := writeNav(&b, cd); err != nil {
			return err
		}
		writeFeedback(&b, cd.Feedback)
		b.WriteString("<main class=\"container\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

func writeNav(w io.Writer, cd *CommonData) error {
	var b strings.Builder
	b.WriteString("<nav><a href=\"/\">Haven</a> <a href=\"/adoptable\">Adoptable</a>")
	if cd.User.AppuserID != 0 {
		if cd.User.HasCapability(CapViewAnimal) {
			b.WriteString(" <a href=\"/animals\">Animals</a>")
		}
		if cd.User.HasCapability(CapViewTasks) {
			b.WriteString(" <a href=\"/tasks\">Tasks</a>")
		}
		if cd.User.HasCapability(CapManageApplications) {
			b.WriteString(" <a href=\"/applications/pending\">Applications</a>")
		}
		if cd.User.HasCapability(CapViewOwnApplications) {
			b.WriteString(" <a href=\"/applications\">My applications</a>")
		}
		if cd.User.HasCapability(CapViewAdminTools) {
			b.WriteString(" <a href=\"/admin\">Admin</a>")
		}
		fmt.Fprintf(&b, " <span class=\"nav-user\">%s</span>", esc(cd.User.DisplayName))
		if cd.User.HasAvatarURL {
			fmt.Fprintf(&b, "<img class=\"avatar\" src=\"%s\" alt=\"\">", esc(cd.User.AvatarURL))
		}
		b.WriteString(" <a href=\"/AuthLogOut\">Log out</a>")
	} else {
		b.WriteString(" <a href=\"/login\">Log in</a>")
	}
	b.WriteString("</nav>")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeFeedback(w io.Writer, fb Feedback) {
	if len(fb.Items) == 0 {
		return
	}
	fmt.Fprintf(w, "<div class=\"feedback %s\"><ul>", fb.CSSClass())
	for _, item := range fb.Items {
		fmt.Fprintf(w, "<li class=\"%s\">%s</li>", item.Type.CSSClass(), esc(item.Message))
	}
	if fb.NSkipped > 0 {
		fmt.Fprintf(w, "<li>(%d more)</li>", fb.NSkipped)
	}
	io.WriteString(w, "</ul></div>")
}

func ErrorPage(cd *CommonData, pageErr error) templ.Component {
	return page("Error", cd, func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<h1>Something went wrong</h1><p class=\"error\">%s</p>", esc(pageErr.Error()))
		return err
	})
}

func LoginPage(cd *CommonData) templ.Component {
	return page("Log in", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Log in</h1>")
		b.WriteString("<form method=\"post\" action=\"/login\">")
		b.WriteString("<label>Email <input type=\"email\" name=\"email\" required></label>")
		b.WriteString("<label>Password <input type=\"password\" name=\"password\" required></label>")
		b.WriteString("<button type=\"submit\">Log in</button></form>")
		b.WriteString("<p><a href=\"/login/google\">Sign in with Google</a></p>")
		b.WriteString("<p><a href=\"/register\">Create an account</a> &middot; <a href=\"/forgot-password\">Forgot password?</a></p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func RegisterPage(cd *CommonData, invite string) templ.Component {
	return page("Register", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Create an account</h1>")
		b.WriteString("<form method=\"post\" action=\"/register\">")
		b.WriteString("<label>Email <input type=\"email\" name=\"email\" required></label>")
		b.WriteString("<label>Name <input type=\"text\" name=\"display-name\" required></label>")
		fmt.Fprintf(&b, "<label>Password <input type=\"password\" name=\"password\" minlength=\"%d\" required></label>", minPasswordLength)
		if invite != "" {
			fmt.Fprintf(&b, "<input type=\"hidden\" name=\"invite\" value=\"%s\">", esc(invite))
		}
		b.WriteString("<button type=\"submit\">Register</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func RegisterDonePage(cd *CommonData) templ.Component {
	return page("Check your email", cd, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Almost there</h1><p>If the address was not already in use, we sent a confirmation link to your email.</p>")
		return err
	})
}

func ForgotPasswordPage(cd *CommonData) templ.Component {
	return page("Forgot password", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Forgot password</h1>")
		b.WriteString("<form method=\"post\" action=\"/forgot-password\">")
		b.WriteString("<label>Email <input type=\"email\" name=\"email\" required></label>")
		b.WriteString("<button type=\"submit\">Send reset link</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func ResetRequestedPage(cd *CommonData) templ.Component {
	return page("Check your email", cd, func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<h1>Check your email</h1><p>If that address has an account, a reset link is on its way.</p>")
		return err
	})
}

func ResetPasswordPage(cd *CommonData, secret string) templ.Component {
	return page("Reset password", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Choose a new password</h1>")
		b.WriteString("<form method=\"post\" action=\"/reset-password\">")
		fmt.Fprintf(&b, "<input type=\"hidden\" name=\"token\" value=\"%s\">", esc(secret))
		fmt.Fprintf(&b, "<label>New password <input type=\"password\" name=\"password\" minlength=\"%d\" required></label>", minPasswordLength)
		b.WriteString("<button type=\"submit\">Set password</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AccessLevelPage(cd *CommonData) templ.Component {
	return page("Access", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Access</h1><p>You are logged in as <b>%s</b> with access level <b>%s</b>.</p>", esc(cd.User.DisplayName), cd.User.AccessLevel)
		b.WriteString("<table><tr><th>Capability</th><th>Granted</th></tr>")
		for _, cap := range CapabilityValues() {
			granted := "no"
			if cd.User.HasCapability(cap) {
				granted = "yes"
			}
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>", cap, granted)
		}
		b.WriteString("</table>")
		b.WriteString("<h2>Preferences</h2><form method=\"post\" action=\"/preferences\">")
		fmt.Fprintf(&b, "<label>Display name <input type=\"text\" name=\"display-name\" value=\"%s\"></label>", esc(cd.User.DisplayName))
		b.WriteString("<button type=\"submit\">Save</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeAnimalCards(b *strings.Builder, rows []GetAnimalsByStatusRow, linkBase string) {
	b.WriteString("<ul class=\"animal-cards\">")
	for _, row := range rows {
		fmt.Fprintf(b, "<li id=\"animal-%d\"><a href=\"%s/%d\">", row.ID, linkBase, row.ID)
		if row.PhotoID.Valid {
			fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\">", esc(PhotoURL(row.PhotoID)), esc(row.Name))
		}
		fmt.Fprintf(b, "<b>%s</b></a> <span>%s", esc(row.Name), esc(row.Species))
		if row.Breed.Valid {
			fmt.Fprintf(b, " (%s)", esc(row.Breed.String))
		}
		fmt.Fprintf(b, ", %s</span></li>", esc(AgeString(row.BirthDate)))
	}
	b.WriteString("</ul>")
}

func AdoptablePage(cd *CommonData, shelterName string, rows []GetAnimalsByStatusRow) templ.Component {
	return page("Adoptable animals", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Adoptable animals at %s</h1>", esc(shelterName))
		if len(rows) == 0 {
			b.WriteString("<p>No animals are looking for a home right now. Check back soon!</p>")
		} else {
			writeAnimalCards(&b, rows, "/adoptable")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AdoptableAnimalPage(cd *CommonData, animal Animal, speciesName string) templ.Component {
	return page(animal.Name, cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>%s</h1>", esc(animal.Name))
		if animal.PhotoID.Valid {
			fmt.Fprintf(&b, "<img class=\"animal-photo\" src=\"%s\" alt=\"%s\">", esc(PhotoURL(animal.PhotoID)), esc(animal.Name))
		}
		fmt.Fprintf(&b, "<p>%s, %s, %s</p>", esc(speciesName), Sex(animal.Sex), esc(AgeString(animal.BirthDate)))
		if animal.Description.Valid {
			fmt.Fprintf(&b, "<p>%s</p>", esc(animal.Description.String))
		}
		fmt.Fprintf(&b, "<p><a href=\"/login\">Log in</a> to apply for adoption, or apply directly if you are already signed in:</p>")
		fmt.Fprintf(&b, "<form method=\"post\" action=\"/animal/%d/apply\">", animal.ID)
		b.WriteString("<label>Why would you be a good match? <textarea name=\"motivation\"></textarea></label>")
		b.WriteString("<button type=\"submit\">Apply to adopt</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func DashboardPage(cd *CommonData, data *DashboardData) templ.Component {
	return page("Dashboard", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Dashboard</h1>")
		if data.NPending > 0 {
			fmt.Fprintf(&b, "<p><a href=\"/applications/pending\">%d application(s) waiting for review</a></p>", data.NPending)
		}
		fmt.Fprintf(&b, "<h2>Available (%d)</h2>", len(data.Available))
		writeAnimalCards(&b, data.Available, "/animal")
		fmt.Fprintf(&b, "<h2>Pending adoption (%d)</h2>", len(data.Pending))
		writeAnimalCards(&b, data.Pending, "/animal")
		fmt.Fprintf(&b, "<h2>Open tasks (%d)</h2><ul>", len(data.OpenTasks))
		for _, t := range data.OpenTasks {
			fmt.Fprintf(&b, "<li>%s", esc(t.Title))
			if t.AssigneeName.Valid {
				fmt.Fprintf(&b, " (%s)", esc(t.AssigneeName.String))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		if cd.User.HasCapability(CapAnimalIntake) {
			b.WriteString("<p><a href=\"/intake\">Take in a new animal</a></p>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeSpeciesOptions(b *strings.Builder, species []Species, breeds []Breed, selSpecies, selBreed int32) {
	b.WriteString("<label>Species <select name=\"species\" required>")
	for _, s := range species {
		sel := ""
		if s.ID == selSpecies {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%d\"%s>%s</option>", s.ID, sel, esc(s.Name))
	}
	b.WriteString("</select></label>")
	b.WriteString("<label>Breed <select name=\"breed\"><option value=\"\">Unknown</option>")
	for _, br := range breeds {
		sel := ""
		if br.ID == selBreed {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%d\"%s>%s</option>", br.ID, sel, esc(br.Name))
	}
	b.WriteString("</select></label>")
}

func writeAnimalFormFields(b *strings.Builder, a Animal) {
	fmt.Fprintf(b, "<label>Name <input type=\"text\" name=\"name\" value=\"%s\" required></label>", esc(a.Name))
	b.WriteString("<label>Sex <select name=\"sex\">")
	for _, s := range SexValues() {
		sel := ""
		if int32(s) == a.Sex {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", s, sel, s)
	}
	b.WriteString("</select></label><label>Size <select name=\"size\">")
	for _, s := range SizeValues() {
		sel := ""
		if int32(s) == a.Size {
			sel = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", s, sel, s)
	}
	b.WriteString("</select></label>")
	fmt.Fprintf(b, "<label>Color <input type=\"text\" name=\"color\" value=\"%s\"></label>", esc(a.Color.String))
	fmt.Fprintf(b, "<label>Weight (kg) <input type=\"number\" step=\"0.1\" name=\"weight-kg\" value=\"%v\"></label>", a.WeightKg.Float64)
	fmt.Fprintf(b, "<label>Birth date <input type=\"date\" name=\"birth-date\" value=\"%s\"></label>", FormatDate(a.BirthDate))
	fmt.Fprintf(b, "<label>Health <input type=\"text\" name=\"health-status\" value=\"%s\"></label>", esc(a.HealthStatus.String))
	fmt.Fprintf(b, "<label>Description <textarea name=\"description\">%s</textarea></label>", esc(a.Description.String))
}

func IntakePage(cd *CommonData, species []Species, breeds []Breed) templ.Component {
	return page("Intake", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Animal intake</h1>")
		b.WriteString("<form method=\"post\" action=\"/intake\">")
		writeAnimalFormFields(&b, Animal{})
		writeSpeciesOptions(&b, species, breeds, 0, 0)
		b.WriteString("<button type=\"submit\">Take in</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AnimalPage(cd *CommonData, view AnimalView, species []Species, breeds []Breed) templ.Component {
	a := view.Animal
	return page(a.Name, cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>%s <span class=\"%s\">%s</span></h1>", esc(a.Name), view.StatusClass(), a.Status())
		if a.PhotoID.Valid {
			fmt.Fprintf(&b, "<img class=\"animal-photo\" src=\"%s\" alt=\"%s\">", esc(PhotoURL(a.PhotoID)), esc(a.Name))
		}
		fmt.Fprintf(&b, "<p>%s", esc(view.SpeciesName))
		if view.BreedName != "" {
			fmt.Fprintf(&b, " (%s)", esc(view.BreedName))
		}
		fmt.Fprintf(&b, ", %s, %s</p>", Sex(a.Sex), esc(AgeString(a.BirthDate)))
		if a.Description.Valid {
			fmt.Fprintf(&b, "<p>%s</p>", esc(a.Description.String))
		}

		if cd.User.HasCapability(CapSubmitApplication) && a.Status() == ListingStatusAVAILABLE {
			fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\">", view.URLSuffix("apply"))
			b.WriteString("<label>Why would you be a good match? <textarea name=\"motivation\"></textarea></label>")
			b.WriteString("<button type=\"submit\">Apply to adopt</button></form>")
		}

		if cd.User.HasCapability(CapAnimalUpdate) {
			fmt.Fprintf(&b, "<details><summary>Edit</summary><form method=\"post\" action=\"%s\">", view.URLSuffix("update"))
			writeAnimalFormFields(&b, a)
			writeSpeciesOptions(&b, species, breeds, a.SpeciesID, a.BreedID.Int32)
			b.WriteString("<button type=\"submit\">Save</button></form>")
			fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\" enctype=\"multipart/form-data\">", view.URLSuffix("photo"))
			b.WriteString("<label>Photo <input type=\"file\" name=\"photo\" accept=\"image/*\"></label>")
			b.WriteString("<button type=\"submit\">Upload</button></form></details>")
		}

		if cd.User.HasCapability(CapAnimalRelist) && a.Status() == ListingStatusPENDING_ADOPTION {
			fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\"><button type=\"submit\">Relist as available</button></form>", view.URLSuffix("relist"))
		}
		if cd.User.HasCapability(CapAnimalReintake) && a.Status() == ListingStatusARCHIVED {
			fmt.Fprintf(&b, "<form method=\"post\" action=\"%s\"><button type=\"submit\">Re-intake</button></form>", view.URLSuffix("reintake"))
		}
		if cd.User.HasCapability(CapManageOutcomes) && a.Status() != ListingStatusARCHIVED {
			fmt.Fprintf(&b, "<p><a href=\"%s\">Record outcome</a></p>", view.URLSuffix("outcome"))
		}

		if view.Outcome != nil {
			o := view.Outcome
			fmt.Fprintf(&b, "<h2>Outcome</h2><p>%s on %s, recorded by %s</p>", OutcomeType(o.OutcomeType), FormatDate(o.OutcomeDate), esc(o.StaffName))
			if o.Note.Valid {
				fmt.Fprintf(&b, "<p>%s</p>", esc(o.Note.String))
			}
			fmt.Fprintf(&b, "<form method=\"post\" action=\"/outcome/%d/set-note\">", o.ID)
			fmt.Fprintf(&b, "<label>Note <input type=\"text\" name=\"note\" value=\"%s\"></label>", esc(o.Note.String))
			b.WriteString("<button type=\"submit\">Save note</button></form>")
		}

		if len(view.Applications) > 0 {
			b.WriteString("<h2>Applications</h2><table><tr><th>Applicant</th><th>Status</th><th>Submitted</th><th></th></tr>")
			for _, app := range view.Applications {
				fmt.Fprintf(&b, "<tr><td>%s</td><td>%s", esc(app.ApplicantName), ApplicationStatus(app.Status))
				if app.IsPrimary {
					b.WriteString(" (primary)")
				}
				fmt.Fprintf(&b, "</td><td>%s</td><td>", FormatTime(app.TimeSubmitted))
				if ApplicationStatus(app.Status) == ApplicationStatusPENDING {
					fmt.Fprintf(&b, "<form method=\"post\" action=\"/application/%d/approve\"><button>Approve</button></form>", app.ID)
				}
				if ApplicationStatus(app.Status) != ApplicationStatusREJECTED {
					fmt.Fprintf(&b, "<form method=\"post\" action=\"/application/%d/reject\"><button>Reject</button></form>", app.ID)
				}
				b.WriteString("</td></tr>")
			}
			b.WriteString("</table>")
		}

		b.WriteString("<h2>History</h2><ul class=\"events\">")
		for _, ev := range view.Events {
			fmt.Fprintf(&b, "<li>%s: %s by %s", FormatTime(ev.Time), AnimalEvent(ev.EventID), esc(ev.UserName))
			if ev.Note != "" {
				fmt.Fprintf(&b, " (%s)", esc(ev.Note))
			}
			b.WriteString("</li>")
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AnimalListPage(cd *CommonData, status ListingStatus, rows []GetAnimalsByStatusRow) templ.Component {
	return page("Animals", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Animals: %s</h1><p>", status)
		for _, s := range ListingStatusValues() {
			if s == ListingStatusUNKNOWN {
				continue
			}
			fmt.Fprintf(&b, "<a href=\"/animals?status=%s\">%s</a> ", s, s)
		}
		b.WriteString("</p>")
		writeAnimalCards(&b, rows, "/animal")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func OwnApplicationsPage(cd *CommonData, rows []GetApplicationsForApplicantRow) templ.Component {
	return page("My applications", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>My applications</h1>")
		if len(rows) == 0 {
			b.WriteString("<p>You have no applications yet. Browse the <a href=\"/adoptable\">adoptable animals</a>.</p>")
		}
		b.WriteString("<ul>")
		for _, row := range rows {
			fmt.Fprintf(&b, "<li id=\"application-%d\"><a href=\"/adoptable/%d\">%s</a>: %s", row.ID, row.AnimalID, esc(row.AnimalName), ApplicationStatus(row.Status))
			if row.IsPrimary {
				b.WriteString(" (you are the chosen adopter!)")
			}
			fmt.Fprintf(&b, ", submitted %s</li>", FormatTime(row.TimeSubmitted))
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func PendingApplicationsPage(cd *CommonData, rows []GetPendingApplicationsRow) templ.Component {
	return page("Pending applications", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Pending applications</h1><table><tr><th>Animal</th><th>Applicant</th><th>Submitted</th><th></th></tr>")
		for _, row := range rows {
			fmt.Fprintf(&b, "<tr><td><a href=\"%s\">%s</a></td><td>%s</td><td>%s</td><td>", AnimalURL(row.AnimalID), esc(row.AnimalName), esc(row.ApplicantName), FormatTime(row.TimeSubmitted))
			fmt.Fprintf(&b, "<form method=\"post\" action=\"/application/%d/approve\"><button>Approve</button></form>", row.ID)
			fmt.Fprintf(&b, "<form method=\"post\" action=\"/application/%d/reject\"><button>Reject</button></form>", row.ID)
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func OutcomePage(cd *CommonData, animal Animal, approved []GetApplicationsForAnimalRow) templ.Component {
	return page("Record outcome", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Record outcome for %s</h1>", esc(animal.Name))
		fmt.Fprintf(&b, "<form method=\"post\" action=\"/animal/%d/outcome\">", animal.ID)
		b.WriteString("<label>Type <select name=\"outcome-type\">")
		for _, t := range OutcomeTypeValues() {
			fmt.Fprintf(&b, "<option value=\"%s\">%s</option>", t, t)
		}
		b.WriteString("</select></label>")
		b.WriteString("<label>Application (for adoptions) <select name=\"application\"><option value=\"\">None</option>")
		for _, app := range approved {
			label := app.ApplicantName
			if app.IsPrimary {
				label += " (primary)"
			}
			fmt.Fprintf(&b, "<option value=\"%d\">%s</option>", app.ID, esc(label))
		}
		b.WriteString("</select></label>")
		b.WriteString("<label>Partner organization <input type=\"text\" name=\"partner\"></label>")
		b.WriteString("<label>Owner name <input type=\"text\" name=\"owner-name\"></label>")
		b.WriteString("<label>Date <input type=\"date\" name=\"outcome-date\"></label>")
		b.WriteString("<label>Note <textarea name=\"note\"></textarea></label>")
		b.WriteString("<button type=\"submit\">Record</button></form>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func TasksPage(cd *CommonData, tasks []GetOpenTasksRow, assignees []GetAppusersRow) templ.Component {
	return page("Tasks", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Open tasks</h1><table><tr><th>Task</th><th>Animal</th><th>Assignee</th><th>Due</th><th></th></tr>")
		for _, t := range tasks {
			fmt.Fprintf(&b, "<tr><td>%s", esc(t.Title))
			if t.Details.Valid {
				fmt.Fprintf(&b, "<br><small>%s</small>", esc(t.Details.String))
			}
			b.WriteString("</td><td>")
			if t.AnimalID.Valid && t.AnimalName.Valid {
				fmt.Fprintf(&b, "<a href=\"%s\">%s</a>", AnimalURL(t.AnimalID.Int32), esc(t.AnimalName.String))
			}
			b.WriteString("</td><td>")
			if t.AssigneeName.Valid {
				b.WriteString(esc(t.AssigneeName.String))
			}
			fmt.Fprintf(&b, "</td><td>%s</td><td>", FormatDate(t.DueDate))
			if cd.User.HasCapability(CapCompleteTask) {
				fmt.Fprintf(&b, "<form method=\"post\" action=\"/task/%d/complete\"><button>Done</button></form>", t.ID)
			}
			if cd.User.HasCapability(CapManageTasks) {
				fmt.Fprintf(&b, "<form method=\"post\" action=\"/task/%d/assign\"><select name=\"assignee\"><option value=\"\">Unassigned</option>", t.ID)
				for _, u := range assignees {
					fmt.Fprintf(&b, "<option value=\"%d\">%s</option>", u.ID, esc(u.DisplayName))
				}
				b.WriteString("</select><button>Assign</button></form>")
			}
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")
		if cd.User.HasCapability(CapManageTasks) {
			b.WriteString("<h2>New task</h2><form method=\"post\" action=\"/tasks\">")
			b.WriteString("<label>Title <input type=\"text\" name=\"title\" required></label>")
			b.WriteString("<label>Details <textarea name=\"details\"></textarea></label>")
			b.WriteString("<label>Animal ID <input type=\"number\" name=\"animal\"></label>")
			b.WriteString("<label>Due <input type=\"date\" name=\"due-date\"></label>")
			b.WriteString("<label>Assign to me <input type=\"checkbox\" name=\"assign-to-me\"></label>")
			b.WriteString("<button type=\"submit\">Add</button></form>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func SpeciesPage(cd *CommonData, species []SpeciesWithBreeds) templ.Component {
	return page("Species", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Species and breeds</h1><ul>")
		for _, s := range species {
			fmt.Fprintf(&b, "<li id=\"%s\"><b>%s</b><ul>", FormID("", "species", s.Species.ID), esc(s.Species.Name))
			for _, br := range s.Breeds {
				fmt.Fprintf(&b, "<li>%s</li>", esc(br.Name))
			}
			b.WriteString("</ul></li>")
		}
		b.WriteString("</ul>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func UserAdminPage(cd *CommonData, users []GetAppusersRow) templ.Component {
	return page("Users", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Users</h1><table><tr><th>Name</th><th>Email</th><th>Access</th><th></th></tr>")
		for _, u := range users {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>", esc(u.DisplayName), esc(u.Email))
			if cd.User.HasCapability(CapManageRoles) {
				fmt.Fprintf(&b, "<form method=\"post\" action=\"/user/%d/access-level\"><select name=\"access-level\">", u.ID)
				for _, al := range AccessLevelValues() {
					sel := ""
					if int32(al) == u.AccessLevel {
						sel = " selected"
					}
					fmt.Fprintf(&b, "<option value=\"%s\"%s>%s</option>", al, sel, al)
				}
				b.WriteString("</select><button>Set</button></form>")
			} else {
				fmt.Fprintf(&b, "%s", AccessLevel(u.AccessLevel))
			}
			b.WriteString("</td><td>")
			if cd.User.HasCapability(CapDeleteUsers) {
				fmt.Fprintf(&b, "<a href=\"/user/%d/confirm-scrub\">Scrub</a>", u.ID)
			}
			b.WriteString("</td></tr>")
		}
		b.WriteString("</table>")
		if cd.User.HasCapability(CapInviteUsers) {
			b.WriteString("<h2>Invite</h2><form method=\"post\" action=\"/invite\">")
			b.WriteString("<label>Email <input type=\"email\" name=\"email\" required></label>")
			b.WriteString("<button type=\"submit\">Send invitation</button></form>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func ConfirmScrubPage(cd *CommonData, user GetUserRow) templ.Component {
	return page("Confirm scrub", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		fmt.Fprintf(&b, "<h1>Scrub %s?</h1>", esc(user.DisplayName))
		b.WriteString("<p>This removes the user's personal data but keeps their history. It cannot be undone.</p>")
		fmt.Fprintf(&b, "<form method=\"post\" action=\"/user/%d/scrub\"><button type=\"submit\">Scrub</button></form>", user.ID)
		b.WriteString("<p><a href=\"/users\">Cancel</a></p>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func AdminRootPage(cd *CommonData, invitations []GetOpenInvitationsRow) templ.Component {
	return page("Admin", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Admin</h1><ul>")
		b.WriteString("<li><a href=\"/users\">Users</a></li>")
		b.WriteString("<li><a href=\"/species\">Species and breeds</a></li>")
		b.WriteString("<li><a href=\"/debug\">Debug</a></li>")
		b.WriteString("</ul>")
		if len(invitations) > 0 {
			b.WriteString("<h2>Open invitations</h2><table><tr><th>Email</th><th>Sent</th><th>Expires</th><th></th></tr>")
			for _, inv := range invitations {
				fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td><td>", esc(inv.Email), FormatTime(inv.TimeCreated), FormatTime(inv.Expires))
				fmt.Fprintf(&b, "<form method=\"post\" action=\"/invite/%d/delete\"><button>Withdraw</button></form>", inv.ID)
				b.WriteString("</td></tr>")
			}
			b.WriteString("</table>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func DebugPage(cd *CommonData, info []DebugInfo) templ.Component {
	return page("Debug", cd, func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Debug</h1>")
		var writeInfo func(items []DebugInfo)
		writeInfo = func(items []DebugInfo) {
			b.WriteString("<ul>")
			for _, item := range items {
				fmt.Fprintf(&b, "<li><b>%s</b>", esc(item.Name))
				if item.Value != nil {
					fmt.Fprintf(&b, ": %s", esc(fmt.Sprint(item.Value)))
				}
				if len(item.Children) > 0 {
					writeInfo(item.Children)
				}
				b.WriteString("</li>")
			}
			b.WriteString("</ul>")
		}
		writeInfo(info)
		_, err := io.WriteString(w, b.String())
		return err
	})
}
