package analyzer

const reportHeader = "RAPPORT D'ANALYSE DE CONVERSATION"

const headerRule = "=================================="

const markerGlyph = "⚠️"

// advice pairs the conclusion and recommendation paragraphs of a level.
type advice struct {
	conclusion     string
	recommendation string
}

// signalAdvice is used when the input declares its own result.
var signalAdvice = map[Level]advice{
	LevelNone: {
		conclusion: "Aucun signe de harcèlement n'a été identifié dans cette conversation.",
		recommendation: "Aucune action particulière n'est nécessaire. Restez attentif à l'évolution des échanges " +
			"et n'hésitez pas à en parler à une personne de confiance si la situation change.",
	},
	LevelLight: {
		conclusion: "La conversation présente des signes légers de harcèlement : quelques propos " +
			"désobligeants ou moqueries isolées.",
		recommendation: "Gardez une trace de ces échanges et signalez clairement à votre interlocuteur que ces propos " +
			"ne sont pas acceptables. Si cela se reproduit, parlez-en à un proche, un enseignant ou un responsable.",
	},
	LevelModerate: {
		conclusion: "La conversation présente des signes modérés de harcèlement : les propos blessants " +
			"sont répétés et visent directement la personne.",
		recommendation: "Conservez des captures d'écran de la conversation, bloquez l'auteur si nécessaire et " +
			"utilisez les outils de signalement de la plateforme. Parlez-en rapidement à un adulte, un responsable " +
			"ou une association d'aide aux victimes.",
	},
	LevelSevere: {
		conclusion: "La conversation présente des signes sévères de harcèlement : insultes répétées, " +
			"intimidation ou menaces.",
		recommendation: "Le harcèlement est un délit puni par l'article 222-33-2-2 du Code pénal (jusqu'à deux ans " +
			"d'emprisonnement et 30 000 euros d'amende). Conservez toutes les preuves, signalez les messages à la " +
			"plateforme et contactez le 3018, numéro national gratuit contre le cyberharcèlement. Un dépôt de plainte " +
			"auprès de la police ou de la gendarmerie est recommandé.",
	},
	LevelCritical: {
		conclusion: "La conversation présente des signes critiques de harcèlement : menaces graves, " +
			"incitation à la violence ou au suicide.",
		recommendation: "Ces faits relèvent de l'article 222-33-2-2 du Code pénal et peuvent être aggravés " +
			"(jusqu'à dix ans d'emprisonnement et 150 000 euros d'amende en cas d'incitation au suicide). En cas de " +
			"danger immédiat, appelez le 17 ou le 112. Contactez sans attendre le 3018 pour faire supprimer les " +
			"contenus, conservez toutes les preuves et portez plainte.",
	},
	LevelInconclusive: {
		conclusion: "Le résultat fourni ne permet pas de déterminer un niveau de harcèlement.",
		recommendation: "Relancez l'analyse avec la conversation complète ou faites relire les échanges par une " +
			"personne qualifiée.",
	},
}

// keywordAdvice is used when the level comes from lexicon hits. Only three
// bands have dedicated text; None uses noHitsConclusion.
var keywordAdvice = map[Level]advice{
	LevelLight: {
		conclusion: "Quelques messages contiennent des termes potentiellement blessants. Il peut s'agir de " +
			"propos isolés ou de plaisanteries mal perçues.",
		recommendation: "Relisez les messages signalés dans leur contexte. Si ces propos vous ont blessé, dites-le " +
			"et parlez-en à une personne de confiance.",
	},
	LevelModerate: {
		conclusion: "Plusieurs messages contiennent des termes associés au harcèlement. La répétition de ces " +
			"propos est préoccupante.",
		recommendation: "Conservez une copie de la conversation, bloquez l'auteur si nécessaire et utilisez les " +
			"outils de signalement de la plateforme. Parlez-en à un adulte ou un responsable.",
	},
	LevelSevere: {
		conclusion: "De nombreux messages contiennent des termes associés au harcèlement, aux menaces ou à la " +
			"violence. La situation est grave.",
		recommendation: "Le harcèlement est puni par l'article 222-33-2-2 du Code pénal. Conservez toutes les " +
			"preuves, contactez le 3018 (numéro national gratuit contre le cyberharcèlement) et envisagez un dépôt " +
			"de plainte. En cas de danger immédiat, appelez le 17.",
	},
}

const noHitsBanner = "✅ AUCUN SIGNE DE HARCÈLEMENT DÉTECTÉ"

const noHitsConclusion = "Aucun des termes surveillés n'a été trouvé dans les messages analysés."

const noHitsDisclaimer = "Avertissement : cette analyse automatique repose sur une liste de mots-clés et ne " +
	"remplace pas l'appréciation d'une personne. Un harcèlement peut exister sans vocabulaire explicite."

var keywordBanners = map[Level]string{
	LevelLight:    markerGlyph + " SIGNES LÉGERS DE HARCÈLEMENT DÉTECTÉS",
	LevelModerate: markerGlyph + " SIGNES MODÉRÉS DE HARCÈLEMENT DÉTECTÉS",
	LevelSevere:   markerGlyph + markerGlyph + " SIGNES GRAVES DE HARCÈLEMENT DÉTECTÉS",
}

const noMessagesGuidance = `Aucun message n'a pu être extrait du fichier JSON.

Formats acceptés :

1. Un tableau de messages :
[
  {"user": "alice", "content": "Bonjour"},
  {"user": "bob", "content": "Salut"}
]

2. Un objet contenant un tableau "messages" (ou "conversation", "data") :
{
  "messages": [
    {"user": "alice", "content": "Bonjour"},
    {"user": "bob", "content": "Salut"}
  ]
}`

const apologyFormat = "Désolé, une erreur est survenue lors de l'analyse locale : %v"
