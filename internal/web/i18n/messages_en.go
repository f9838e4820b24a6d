package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.AmericanEnglish

	// Shared chrome
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.services", "Services")
	message.SetString(lang, "nav.contact", "Contact")
	message.SetString(lang, "nav.dashboard", "Dashboard")
	message.SetString(lang, "nav.forum", "Forum")
	message.SetString(lang, "nav.sign_in", "Sign in")
	message.SetString(lang, "nav.sign_out", "Sign out")

	// Landing page
	message.SetString(lang, "title.landing", "%s | Healthcare advice you can trust")
	message.SetString(lang, "landing.tagline", "Read articles written by verified doctors and join the discussion.")
	message.SetString(lang, "landing.cta", "Get started")

	// Public pages
	message.SetString(lang, "title.about", "%s | About")
	message.SetString(lang, "about.heading", "About us")
	message.SetString(lang, "about.body", "We connect doctors who want to share practical health guidance with patients looking for answers.")
	message.SetString(lang, "title.services", "%s | Services")
	message.SetString(lang, "services.heading", "Services")
	message.SetString(lang, "services.body", "Doctor-authored articles, open discussions, and role-aware moderation.")
	message.SetString(lang, "title.contact", "%s | Contact")
	message.SetString(lang, "contact.heading", "Contact")
	message.SetString(lang, "contact.body", "Questions or feedback? Write to support@dronline.health.")

	// Auth page
	message.SetString(lang, "title.auth", "%s | Sign In")
	message.SetString(lang, "auth.signup_heading", "Create an account")
	message.SetString(lang, "auth.login_heading", "Sign in")
	message.SetString(lang, "auth.full_name", "Full name")
	message.SetString(lang, "auth.email", "Email")
	message.SetString(lang, "auth.password", "Password")
	message.SetString(lang, "auth.role", "I am a")
	message.SetString(lang, "auth.role_doctor", "Doctor")
	message.SetString(lang, "auth.role_patient", "Patient")
	message.SetString(lang, "auth.specialization", "Specialization")
	message.SetString(lang, "auth.years_of_experience", "Years of experience")
	message.SetString(lang, "auth.bio", "Short bio")
	message.SetString(lang, "auth.signup_submit", "Sign up")
	message.SetString(lang, "auth.login_submit", "Sign in")

	// Auth errors
	message.SetString(lang, "auth.error.email_invalid", "Enter a valid email address.")
	message.SetString(lang, "auth.error.email_taken", "This email is already registered.")
	message.SetString(lang, "auth.error.password_too_short", "Password must be at least %s characters.")
	message.SetString(lang, "auth.error.invalid_credentials", "Email or password is incorrect.")
	message.SetString(lang, "auth.error.name_required", "Enter your full name.")
	message.SetString(lang, "auth.error.role_required", "Choose doctor or patient.")

	// Dashboard
	message.SetString(lang, "title.dashboard", "%s | Dashboard")
	message.SetString(lang, "dashboard.doctor_heading", "Your posts")
	message.SetString(lang, "dashboard.patient_heading", "Latest posts")
	message.SetString(lang, "dashboard.new_post", "New post")
	message.SetString(lang, "dashboard.post_title", "Title")
	message.SetString(lang, "dashboard.post_content", "Content")
	message.SetString(lang, "dashboard.post_category", "Illness category (optional)")
	message.SetString(lang, "dashboard.post_submit", "Publish")
	message.SetString(lang, "dashboard.post_delete", "Delete")
	message.SetString(lang, "dashboard.no_posts", "No posts yet.")
	message.SetString(lang, "dashboard.unavailable_heading", "Dashboard unavailable")
	message.SetString(lang, "dashboard.unavailable_message", "We could not resolve your role. Please sign in again or contact support.")
	message.SetString(lang, "dashboard.error.title_required", "Enter a title for your post.")
	message.SetString(lang, "dashboard.error.content_required", "Enter content for your post.")
	message.SetString(lang, "dashboard.error.not_allowed", "Only doctors can publish posts.")

	// Forum
	message.SetString(lang, "title.forum", "%s | Forum")
	message.SetString(lang, "forum.heading", "Forum")
	message.SetString(lang, "forum.comments", "%d comments")
	message.SetString(lang, "forum.read_discussion", "Read discussion")
	message.SetString(lang, "forum.empty", "Nothing has been posted yet.")

	// Thread
	message.SetString(lang, "thread.comments_heading", "Discussion")
	message.SetString(lang, "thread.comment_placeholder", "Write a comment")
	message.SetString(lang, "thread.comment_submit", "Comment")
	message.SetString(lang, "thread.comment_delete", "Delete")
	message.SetString(lang, "thread.no_comments", "No comments yet. Start the discussion.")
	message.SetString(lang, "thread.error.comment_required", "Write something before posting.")

	// Errors
	message.SetString(lang, "error.title_not_found", "Page not found")
	message.SetString(lang, "error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "error.title_forbidden", "Not allowed")
	message.SetString(lang, "error.message_forbidden", "You do not have permission to do that.")
	message.SetString(lang, "error.title_server", "Something went wrong")
	message.SetString(lang, "error.message_server", "Please try again in a moment.")
	message.SetString(lang, "error.back_home", "Back to home")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
