package resumeapi

// indexHTML is the single-page UI: upload a file, paste text, or batch
// several files; view the extracted fields, download the result as JSON
// or Markdown.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>cvlens &mdash; Resume Parser</title>
<style>
  body { font-family: system-ui, sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #222; }
  h1 { font-size: 1.5rem; }
  .panel { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
  textarea { width: 100%; height: 200px; font-family: monospace; }
  button { padding: .5rem 1rem; border: 0; border-radius: 6px; background: #2563eb; color: #fff; cursor: pointer; }
  button:disabled { background: #9ca3af; }
  pre { background: #f6f8fa; padding: 1rem; border-radius: 6px; overflow-x: auto; }
  .error { color: #b91c1c; }
  .field b { display: inline-block; min-width: 7rem; }
</style>
</head>
<body>
<h1>cvlens</h1>
<p>Extract structured fields from a resume. Supported formats: TXT, PDF, DOCX.</p>

<div class="panel">
  <h2>Upload a file</h2>
  <input type="file" id="file" accept=".txt,.text,.pdf,.docx">
  <button id="parse-file">Parse</button>
</div>

<div class="panel">
  <h2>Paste text</h2>
  <textarea id="text" placeholder="Paste resume text here..."></textarea>
  <button id="parse-text">Parse</button>
</div>

<div class="panel">
  <h2>Batch process</h2>
  <input type="file" id="batch-files" accept=".txt,.text,.pdf,.docx" multiple>
  <button id="parse-batch">Parse all</button>
</div>

<div class="panel" id="batch-panel" hidden>
  <h2>Batch results</h2>
  <p id="batch-summary"></p>
  <div id="batch-entries"></div>
  <button id="dl-batch">Download batch_results.json</button>
</div>

<div class="panel" id="result-panel" hidden>
  <h2>Result</h2>
  <div id="fields"></div>
  <pre id="json"></pre>
  <button id="dl-json">Download JSON</button>
  <button id="dl-md">Download Markdown</button>
</div>
<p class="error" id="error"></p>

<script>
let lastRecord = null;
let lastBatch = null;

function showBatch(body) {
  lastBatch = body.results;
  document.getElementById('batch-summary').textContent =
    'Total: ' + body.total + ' | Success: ' + body.success + ' | Failed: ' + body.failed;
  document.getElementById('batch-entries').innerHTML = (body.results || [])
    .map(e => e.success
      ? '<div class="field"><b>' + e.filename + ':</b> ' + ((e.data || {}).name || 'Not found') + '</div>'
      : '<div class="field error"><b>' + e.filename + ':</b> ' + e.error + '</div>')
    .join('');
  document.getElementById('batch-panel').hidden = false;
  document.getElementById('error').textContent = '';
}

function show(record) {
  lastRecord = record;
  const fields = document.getElementById('fields');
  const rows = [
    ['Name', record.name], ['Email', record.email], ['Phone', record.phone],
    ['Position', record.position], ['Experience', record.experience],
    ['Education', record.education], ['Summary', record.summary],
    ['Primary skills', (record.primarySkills || []).join(', ')],
    ['Secondary skills', (record.secondarySkills || []).join(', ')],
  ];
  fields.innerHTML = rows
    .map(([k, v]) => '<div class="field"><b>' + k + ':</b> ' + (v || 'Not found') + '</div>')
    .join('');
  document.getElementById('json').textContent = JSON.stringify(record, null, 2);
  document.getElementById('result-panel').hidden = false;
  document.getElementById('error').textContent = '';
}

async function handle(resp) {
  const body = await resp.json();
  if (!resp.ok) throw new Error(body.message || 'request failed');
  show(body);
}

function fail(err) {
  document.getElementById('error').textContent = err.message;
}

document.getElementById('parse-file').addEventListener('click', () => {
  const input = document.getElementById('file');
  if (!input.files.length) return fail(new Error('choose a file first'));
  const form = new FormData();
  form.append('file', input.files[0]);
  fetch('/api/v1/resumes/parse', { method: 'POST', body: form }).then(handle).catch(fail);
});

document.getElementById('parse-text').addEventListener('click', () => {
  const text = document.getElementById('text').value;
  fetch('/api/v1/resumes/parse-text', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify({ text }),
  }).then(handle).catch(fail);
});

document.getElementById('parse-batch').addEventListener('click', () => {
  const input = document.getElementById('batch-files');
  if (!input.files.length) return fail(new Error('choose files first'));
  const form = new FormData();
  for (const f of input.files) form.append('files', f);
  fetch('/api/v1/resumes/batch', { method: 'POST', body: form })
    .then(async resp => {
      const body = await resp.json();
      if (!resp.ok) throw new Error(body.message || 'request failed');
      showBatch(body);
    })
    .catch(fail);
});

document.getElementById('dl-batch').addEventListener('click', () => {
  if (!lastBatch) return;
  const blob = new Blob([JSON.stringify(lastBatch, null, 2)], { type: 'application/json' });
  const a = document.createElement('a');
  a.href = URL.createObjectURL(blob);
  a.download = 'batch_results.json';
  a.click();
});

document.getElementById('dl-json').addEventListener('click', () => {
  if (!lastRecord) return;
  const blob = new Blob([JSON.stringify(lastRecord, null, 2)], { type: 'application/json' });
  const a = document.createElement('a');
  a.href = URL.createObjectURL(blob);
  a.download = 'resume_parsed.json';
  a.click();
});

document.getElementById('dl-md').addEventListener('click', () => {
  if (!lastRecord) return;
  fetch('/api/v1/resumes/markdown', {
    method: 'POST',
    headers: { 'Content-Type': 'application/json' },
    body: JSON.stringify(lastRecord),
  }).then(r => r.blob()).then(blob => {
    const a = document.createElement('a');
    a.href = URL.createObjectURL(blob);
    a.download = 'resume_parsed.md';
    a.click();
  }).catch(fail);
});
</script>
</body>
</html>`
