package summarize

// summaryPrompt asks for a bounded summary of one document. The
// {additional_info}, {word_limit} and {text} markers are replaced
// literally before the call.
const summaryPrompt = `
Você é um agente especialista em resumir documentos sobre diferentes assuntos.

{additional_info}

Você deve respeitar o seguinte limite de palavras em seu resumo: {word_limit}

Segue o texto do documento para você resumir:

### Início do documento
{text}
### Fim do documento

Pense bastante, analise o texto e resuma-o de forma clara e objetiva respeitando o limite de palavras estabelecido.
Caso você não respeite o limite de palavras, fugindo muito desse limite ideal, você será multado.
`
