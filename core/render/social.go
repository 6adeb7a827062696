package render

import (
	"strings"

	"github.com/nilovelez/wptv-sessions-list/core"
)

// socialRow is one announced session.
type socialRow struct {
	Date     string
	Time     string
	Speakers string
	Title    string
	Track    string
	Content  string
}

// socialPrompt is sent ahead of the CSV block so the text-generation
// service writes one short announcement per session.
const socialPrompt = `A partir de un archivo CSV con las columnas: fecha, hora, track, ponente, título, descripción

Procesa únicamente el contenido del CSV. No consultes fuentes externas ni añadas información que no esté explícitamente en el archivo. No completes, interpretes ni inventes nada. Si un campo está vacío, deja el contenido correspondiente vacío o genera solo con lo disponible.

Genera un texto por cada entrada usando un estilo cercano y dinámico, como si estuvieras anunciando las charlas en redes sociales. Usa frases como: '¡A continuación tenemos a [ponente] que nos va a enseñar...!' o 'No te pierdas a [ponente] hablando de...'. Mantén el tono entusiasta pero natural, destacando lo interesante de cada charla con frases cortas y directas. Sigue usando solo la información proporcionada en el CSV.

Genera un texto por cada entrada, sin omitir ninguna. Devuelve la salida en formato TSV con las columnas:

fecha_hora <TAB> track <TAB> ponente <TAB> texto

Instrucciones:
- Une fecha y hora como "fecha_hora" en formato YYYY-MM-DD HH:MM
- Escribe el texto en español
- La columna texto debe tener un máximo de 280 caracteres, como si fuera para una publicación en Twitter. Procura que sea los más largo posible dentro de ese límite.
- Menciona al ponente y destaca el beneficio o enfoque de la charla, usando solo la descripción proporcionada
- No uses hashtags ni emojis
- Usa tabuladores reales (` + "\t" + `) para separar las columnas. No uses espacios
- Escapa los tabuladores dentro del contenido (reemplázalos por espacios)
- Devuelve solo un bloque de código con formato ` + "\\`\\`\\`" + `tsv, sin ningún texto adicional fuera del bloque
- Si inventas, asumes o rellenas cualquier contenido, la respuesta no es válida

Aquí tienes los datos de entrada en CSV:
`

const socialCSVHeader = "date,time,track,speaker,title,content\n"

// NewSocialFormatter builds the chronological export used by the social
// media team.
func NewSocialFormatter() *Pipeline[socialRow] {
	return &Pipeline[socialRow]{
		name:  FormatSocial,
		build: buildSocialRows,
		less: func(a, b socialRow) bool {
			if a.Date != b.Date {
				return a.Date < b.Date
			}
			if a.Time != b.Time {
				return a.Time < b.Time
			}
			return a.Track < b.Track
		},
		renderers: []modeRenderer[socialRow]{
			{mode: core.ModeChatGPT, render: renderSocialPrompt},
			{mode: core.ModeTable, render: renderSocialTable},
		},
	}
}

func buildSocialRows(sessions []core.Session) []socialRow {
	rows := make([]socialRow, 0, len(sessions))
	for _, s := range sessions {
		start := localStart(s)
		rows = append(rows, socialRow{
			Date:     start.Format("02/01/2006"),
			Time:     start.Format("15:04"),
			Speakers: s.Speakers,
			Title:    s.Title,
			Track:    s.Track,
			Content:  s.Content,
		})
	}
	return rows
}

// renderSocialPrompt writes the prompt followed by the CSV block. Every
// double quote in the result, prompt included, is then turned into &quot;.
func renderSocialPrompt(rows []socialRow) string {
	var b strings.Builder
	b.WriteString(socialPrompt)
	b.WriteString(socialCSVHeader)
	for _, r := range rows {
		b.WriteString(quoteCSV(r.Date) + ",")
		b.WriteString(quoteCSV(r.Time) + ",")
		b.WriteString(quoteCSV(r.Track) + ",")
		b.WriteString(quoteCSV(r.Speakers) + ",")
		b.WriteString(quoteCSV(r.Title) + ",")
		b.WriteString(`"` + csvContent.Replace(r.Content) + `"` + "\n")
	}
	return strings.ReplaceAll(b.String(), `"`, "&quot;")
}

func renderSocialTable(rows []socialRow) string {
	var b strings.Builder
	b.WriteString("<table>")
	b.WriteString("<tr><td>Date</td><td>Speakers</td><td>Title</td><td>Track</td><td>Content</td></tr>")
	for _, r := range rows {
		b.WriteString("<tr>")
		b.WriteString("<td>" + r.Date + "</td>")
		b.WriteString("<td>" + r.Speakers + "</td>")
		b.WriteString("<td>" + r.Title + "</td>")
		b.WriteString("<td>" + r.Track + "</td>")
		b.WriteString("<td>" + r.Content + "</td>")
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}
