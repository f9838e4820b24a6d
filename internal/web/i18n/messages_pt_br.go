package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	// Shared chrome
	message.SetString(lang, "nav.home", "Início")
	message.SetString(lang, "nav.about", "Sobre")
	message.SetString(lang, "nav.services", "Serviços")
	message.SetString(lang, "nav.contact", "Contato")
	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.forum", "Fórum")
	message.SetString(lang, "nav.sign_in", "Entrar")
	message.SetString(lang, "nav.sign_out", "Sair")

	// Landing page
	message.SetString(lang, "title.landing", "%s | Orientação de saúde confiável")
	message.SetString(lang, "landing.tagline", "Leia artigos escritos por médicos verificados e participe da discussão.")
	message.SetString(lang, "landing.cta", "Começar")

	// Public pages
	message.SetString(lang, "title.about", "%s | Sobre")
	message.SetString(lang, "about.heading", "Sobre nós")
	message.SetString(lang, "about.body", "Conectamos médicos que querem compartilhar orientações práticas de saúde com pacientes em busca de respostas.")
	message.SetString(lang, "title.services", "%s | Serviços")
	message.SetString(lang, "services.heading", "Serviços")
	message.SetString(lang, "services.body", "Artigos escritos por médicos, discussões abertas e moderação por papel.")
	message.SetString(lang, "title.contact", "%s | Contato")
	message.SetString(lang, "contact.heading", "Contato")
	message.SetString(lang, "contact.body", "Dúvidas ou sugestões? Escreva para support@dronline.health.")

	// Auth page
	message.SetString(lang, "title.auth", "%s | Entrar")
	message.SetString(lang, "auth.signup_heading", "Criar uma conta")
	message.SetString(lang, "auth.login_heading", "Entrar")
	message.SetString(lang, "auth.full_name", "Nome completo")
	message.SetString(lang, "auth.email", "E-mail")
	message.SetString(lang, "auth.password", "Senha")
	message.SetString(lang, "auth.role", "Eu sou")
	message.SetString(lang, "auth.role_doctor", "Médico(a)")
	message.SetString(lang, "auth.role_patient", "Paciente")
	message.SetString(lang, "auth.specialization", "Especialização")
	message.SetString(lang, "auth.years_of_experience", "Anos de experiência")
	message.SetString(lang, "auth.bio", "Breve biografia")
	message.SetString(lang, "auth.signup_submit", "Cadastrar")
	message.SetString(lang, "auth.login_submit", "Entrar")

	// Auth errors
	message.SetString(lang, "auth.error.email_invalid", "Informe um e-mail válido.")
	message.SetString(lang, "auth.error.email_taken", "Este e-mail já está cadastrado.")
	message.SetString(lang, "auth.error.password_too_short", "A senha deve ter pelo menos %s caracteres.")
	message.SetString(lang, "auth.error.invalid_credentials", "E-mail ou senha incorretos.")
	message.SetString(lang, "auth.error.name_required", "Informe seu nome completo.")
	message.SetString(lang, "auth.error.role_required", "Escolha médico ou paciente.")

	// Dashboard
	message.SetString(lang, "title.dashboard", "%s | Painel")
	message.SetString(lang, "dashboard.doctor_heading", "Suas publicações")
	message.SetString(lang, "dashboard.patient_heading", "Publicações recentes")
	message.SetString(lang, "dashboard.new_post", "Nova publicação")
	message.SetString(lang, "dashboard.post_title", "Título")
	message.SetString(lang, "dashboard.post_content", "Conteúdo")
	message.SetString(lang, "dashboard.post_category", "Categoria (opcional)")
	message.SetString(lang, "dashboard.post_submit", "Publicar")
	message.SetString(lang, "dashboard.post_delete", "Excluir")
	message.SetString(lang, "dashboard.no_posts", "Nenhuma publicação ainda.")
	message.SetString(lang, "dashboard.unavailable_heading", "Painel indisponível")
	message.SetString(lang, "dashboard.unavailable_message", "Não foi possível identificar seu papel. Entre novamente ou fale com o suporte.")
	message.SetString(lang, "dashboard.error.title_required", "Informe um título para a publicação.")
	message.SetString(lang, "dashboard.error.content_required", "Informe o conteúdo da publicação.")
	message.SetString(lang, "dashboard.error.not_allowed", "Apenas médicos podem publicar.")

	// Forum
	message.SetString(lang, "title.forum", "%s | Fórum")
	message.SetString(lang, "forum.heading", "Fórum")
	message.SetString(lang, "forum.comments", "%d comentários")
	message.SetString(lang, "forum.read_discussion", "Ler discussão")
	message.SetString(lang, "forum.empty", "Nada foi publicado ainda.")

	// Thread
	message.SetString(lang, "thread.comments_heading", "Discussão")
	message.SetString(lang, "thread.comment_placeholder", "Escreva um comentário")
	message.SetString(lang, "thread.comment_submit", "Comentar")
	message.SetString(lang, "thread.comment_delete", "Excluir")
	message.SetString(lang, "thread.no_comments", "Nenhum comentário ainda. Comece a discussão.")
	message.SetString(lang, "thread.error.comment_required", "Escreva algo antes de publicar.")

	// Errors
	message.SetString(lang, "error.title_not_found", "Página não encontrada")
	message.SetString(lang, "error.message_not_found", "A página que você procura não existe.")
	message.SetString(lang, "error.title_forbidden", "Ação não permitida")
	message.SetString(lang, "error.message_forbidden", "Você não tem permissão para fazer isso.")
	message.SetString(lang, "error.title_server", "Algo deu errado")
	message.SetString(lang, "error.message_server", "Tente novamente em instantes.")
	message.SetString(lang, "error.back_home", "Voltar ao início")

	// Language nav
	message.SetString(lang, "nav.lang_en", "EN")
	message.SetString(lang, "nav.lang_pt_br", "PT-BR")
}
