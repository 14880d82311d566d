package recruit

// cvPrompt instructs the model to extract a structured candidate record
// from a CV. The <titulo>, <descricao> and <cv_text> markers are replaced
// literally before the call. The JSON keys match core.CandidateProfile.
const cvPrompt = `
Você é um especialista em recrutamento e seleção com muitos anos de experiência em avaliação de currículos profissionais (CVs).
Por favor, extraia as seguintes informações do texto do CV abaixo e retorne em um formato JSON estruturado.
Caso você omita alguma das informações, será multado.
Se não souber ou não tiver encontrado no documento, deixar em branco.
- Nome do Candidato
- Idade do Candidato (se desconhecido, deixe em branco)
- Localização do Candidato (se desconhecido, deixe em branco)
- Senioridade do Candidato (por exemplo, Estagiário, Júnior, Pleno, Sênior, Especialista, Líder, Gerente, Diretor, C-Level, CEO, etc)
- Telefone do Candidato (se desconhecido, deixe em branco)
- E-mail do Candidato (se desconhecido, deixe em branco)
- Linkedin do Candidato (se desconhecido, deixe em branco)
- Git do Candidato (se desconhecido, deixe em branco)
- Cargo Atual (se desconhecido, deixe em branco)
- Empresa em que trabalha (se desconhecido, deixe em branco)
- Nível de Escolaridade (por exemplo, Bacharelado, Pós-graduação, MBA, etc.)
- Escola (nome da Faculdade ou Pós-graduação, caso encontre)
- Anos de Experiência (número inteiro, caso encontre, representando sua estimativa de quantos anos de experiência o profissional tem. Se não souber, deixe como 0)
- Habilidades (lista de habilidades do candidato, separado por vírgulas, como por exemplo: Java, Python, C++, Excel, React, Linux, AWS, SQL, Docker, Git, Scrum, Machine Learning, Inteligência Artificial, NLP, IA Generativa, Liderança, Soft skills, etc.). Caso não identifique nenhuma habilidade, deixe em branco.
- O candidato fala inglês? (apenas Sim ou Não. Se não souber, deixe como Não)
- O candidato é PCD (deficiente)? (apenas Sim ou Não. Se não souber, deixe como Não)
- Salário estimado do candidato (valor inteiro entre 2000 e 35 mil reais, múltiplo de 100, que representa sua estimativa do salário do candidato para sua função, cargo, responsabilidades, escolaridade e tempo de mercado)
- Avaliação do Candidato para a vaga em questão (inteiro entre 0-100, considerando experiência, educação e adequação à vaga em aberto)
- Resumo curto das habilidades do candidato (máximo de 150 palavras)
- Motivo da avaliação de adequação do candidato: justificativa para a nota atribuída de 0 a 100, em no máximo 100 palavras.

Desse modo, caso o candidato não atue em algo relacionado à descrição e necessidades da vaga, a nota deve ser baixa. Caso o candidato tenha estudado em uma boa faculdade ou curso, tenha experiência prévia alinhada com a vaga e seja qualificado para exercer as funções, a nota deve ser alta.
Por exemplo, se é procurado um Programador Java e o candidato trabalha com Dados, ou é Scrum Master, Project Manager ou Programador Cobol, a nota deve ser baixa.
Caso o candidato seja de uma tecnologia, e a vaga seja de outra tecnologia, a nota deve ser mais baixa.
Candidatos que estudaram em boas faculdades ou cursos devem ter notas mais altas.
Caso o candidato seja bom e adequado ao escopo da vaga, a nota deve ser alta.
Caso o candidato não tenha relação com a vaga (ex. vaga para RH, administrativo, ou jurídico e o candidato é programador ou técnico), a nota deve ser baixa.
Se é procurado um cargo de alta gestão (ex. gerente, diretor), e o candidato ainda não tem essa experiência, a nota também não deve ser muito alta.
Importante: se o candidato é muito bom, porém não tem nada a ver com a vaga, a nota deve ser entre baixa e média (de 30 a 50), mesmo que o candidato seja excelente.
Para estimativa salarial, tenha em mente que geralmente profissionais estagiários ganham entre 1400 e 2200, juniors entre 3500 e 8000, plenos entre 8000 e 12000, sêniores entre 12000 e 17000, especialistas entre 16000 e 23000, gerentes entre 18000 e 28000, diretores entre 25000 e 35000 e C-Levels entre 30000 e 50000.
Esses valores podem variar conforme localização, escolaridade, experiência, senioridade, tecnologia, empresa, tempo de mercado, entre outros fatores.

Segue o título da vaga:
<titulo>

Segue a descrição da vaga:
<descricao>

Segue agora o texto extraído do CV do candidato:
<cv_text>

Retorne o resultado no formato de estrutura JSON:
{
    "Name": "<nome>",
    "Age": "<idade>",
    "Location": "<localização>",
    "Seniority": "<senioridade>",
    "Phone": "<telefone>",
    "Email": "<email>",
    "LinkedIn": "<linkedin>",
    "Git": "<git>",
    "CurrentRole": "<cargo_atual>",
    "Company": "<ultima_empresa>",
    "EducationLevel": "<escolaridade>",
    "School": "<escola>",
    "YearsExperience": <anos_experiencia>,
    "Skills": "<habilidades>",
    "SpeaksEnglish": "<Sim/Não>",
    "IsDisabled": "<Sim/Não>",
    "EstimatedSalary": <salario_estimado>,
    "CandidateScore": <avaliacao_adequacao>,
    "SkillsSummary": "<resumo_habilidades>",
    "ScoreRationale": "<motivo_adequacao>"
}

Respire fundo, leia com atenção, pense bastante e extraia as informações solicitadas.
`
